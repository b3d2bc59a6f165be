// Package cortexexv1 holds the JSON messages and procedure names of the
// cortexex.v1 Connect API.
package cortexexv1

const (
	StatsServiceName = "cortexex.v1.StatsService"
	PlayServiceName  = "cortexex.v1.PlayService"
	ThemeServiceName = "cortexex.v1.ThemeService"
	UserServiceName  = "cortexex.v1.UserService"
)

const (
	StatsServiceGetGlobalStatsProcedure  = "/" + StatsServiceName + "/GetGlobalStats"
	StatsServiceGetProfileStatsProcedure = "/" + StatsServiceName + "/GetProfileStats"
	StatsServiceGetThemeStatsProcedure   = "/" + StatsServiceName + "/GetThemeStats"

	PlayServiceBuildSessionPoolProcedure    = "/" + PlayServiceName + "/BuildSessionPool"
	PlayServiceGradeAnswerProcedure         = "/" + PlayServiceName + "/GradeAnswer"
	PlayServiceRecordSessionResultProcedure = "/" + PlayServiceName + "/RecordSessionResult"
	PlayServiceListSessionsProcedure        = "/" + PlayServiceName + "/ListSessions"

	ThemeServiceCreateThemeProcedure    = "/" + ThemeServiceName + "/CreateTheme"
	ThemeServiceUpdateThemeProcedure    = "/" + ThemeServiceName + "/UpdateTheme"
	ThemeServiceGetThemeProcedure       = "/" + ThemeServiceName + "/GetTheme"
	ThemeServiceListThemesProcedure     = "/" + ThemeServiceName + "/ListThemes"
	ThemeServiceDeleteThemeProcedure    = "/" + ThemeServiceName + "/DeleteTheme"
	ThemeServiceCreateQuestionProcedure = "/" + ThemeServiceName + "/CreateQuestion"
	ThemeServiceUpdateQuestionProcedure = "/" + ThemeServiceName + "/UpdateQuestion"
	ThemeServiceDeleteQuestionProcedure = "/" + ThemeServiceName + "/DeleteQuestion"
	ThemeServiceListQuestionsProcedure  = "/" + ThemeServiceName + "/ListQuestions"
	ThemeServiceCreateEntryProcedure    = "/" + ThemeServiceName + "/CreateEntry"
	ThemeServiceUpdateEntryProcedure    = "/" + ThemeServiceName + "/UpdateEntry"
	ThemeServiceDeleteEntryProcedure    = "/" + ThemeServiceName + "/DeleteEntry"
	ThemeServiceListEntriesProcedure    = "/" + ThemeServiceName + "/ListEntries"

	UserServiceRegisterProcedure = "/" + UserServiceName + "/Register"
)
