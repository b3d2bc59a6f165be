package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names shared with the repository adapters.
const (
	TableUsers           = "users"
	TableThemes          = "themes"
	TableQuestions       = "questions"
	TableLanguageEntries = "language_entries"
	TableQuestionMastery = "question_mastery"
	TableEntryMastery    = "entry_mastery"
	TableSessions        = "session_summaries"
)

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 64, Unique: true},
		{Name: "credential_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       TableUsers,
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}

	// ThemesColumns holds the columns for the "themes" table.
	ThemesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}, Default: "medium"},
		{Name: "is_language_topic", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// ThemesTable holds the schema information for the "themes" table.
	ThemesTable = &schema.Table{
		Name:       TableThemes,
		Columns:    ThemesColumns,
		PrimaryKey: []*schema.Column{ThemesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "themes_users_themes",
				Columns:    []*schema.Column{ThemesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "theme_user_id", Columns: []*schema.Column{ThemesColumns[7]}},
		},
	}

	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"input", "select", "radiobutton"}},
		{Name: "is_strict", Type: field.TypeBool, Default: true},
		{Name: "options", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "correct_options", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "theme_id", Type: field.TypeInt64},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       TableQuestions,
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_themes_questions",
				Columns:    []*schema.Column{QuestionsColumns[9]},
				RefColumns: []*schema.Column{ThemesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "question_theme_id", Columns: []*schema.Column{QuestionsColumns[9]}},
		},
	}

	// LanguageEntriesColumns holds the columns for the "language_entries" table.
	LanguageEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "word", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "translation", Type: field.TypeString, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "theme_id", Type: field.TypeInt64},
	}
	// LanguageEntriesTable holds the schema information for the "language_entries" table.
	LanguageEntriesTable = &schema.Table{
		Name:       TableLanguageEntries,
		Columns:    LanguageEntriesColumns,
		PrimaryKey: []*schema.Column{LanguageEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "language_entries_themes_entries",
				Columns:    []*schema.Column{LanguageEntriesColumns[6]},
				RefColumns: []*schema.Column{ThemesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "languageentry_theme_id", Columns: []*schema.Column{LanguageEntriesColumns[6]}},
		},
	}

	// QuestionMasteryColumns holds the columns for the "question_mastery" table.
	QuestionMasteryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "knowledge_level", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeInt64},
	}
	// QuestionMasteryTable holds the schema information for the "question_mastery" table.
	QuestionMasteryTable = &schema.Table{
		Name:       TableQuestionMastery,
		Columns:    QuestionMasteryColumns,
		PrimaryKey: []*schema.Column{QuestionMasteryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_mastery_users_question_mastery",
				Columns:    []*schema.Column{QuestionMasteryColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "question_mastery_questions_mastery",
				Columns:    []*schema.Column{QuestionMasteryColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "questionmastery_user_id_question_id", Unique: true, Columns: []*schema.Column{QuestionMasteryColumns[3], QuestionMasteryColumns[4]}},
		},
	}

	// EntryMasteryColumns holds the columns for the "entry_mastery" table.
	EntryMasteryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "entry_id", Type: field.TypeInt64},
	}
	// EntryMasteryTable holds the schema information for the "entry_mastery" table.
	EntryMasteryTable = &schema.Table{
		Name:       TableEntryMastery,
		Columns:    EntryMasteryColumns,
		PrimaryKey: []*schema.Column{EntryMasteryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entry_mastery_users_entry_mastery",
				Columns:    []*schema.Column{EntryMasteryColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "entry_mastery_language_entries_mastery",
				Columns:    []*schema.Column{EntryMasteryColumns[4]},
				RefColumns: []*schema.Column{LanguageEntriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "entrymastery_user_id_entry_id", Unique: true, Columns: []*schema.Column{EntryMasteryColumns[3], EntryMasteryColumns[4]}},
		},
	}

	// SessionSummariesColumns holds the columns for the "session_summaries" table.
	SessionSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "max_correct_in_row", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// SessionSummariesTable holds the schema information for the "session_summaries" table.
	SessionSummariesTable = &schema.Table{
		Name:       TableSessions,
		Columns:    SessionSummariesColumns,
		PrimaryKey: []*schema.Column{SessionSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_summaries_users_sessions",
				Columns:    []*schema.Column{SessionSummariesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "sessionsummary_user_id_created_at", Columns: []*schema.Column{SessionSummariesColumns[5], SessionSummariesColumns[4]}},
		},
	}

	// Tables holds every table in creation order.
	Tables = []*schema.Table{
		UsersTable,
		ThemesTable,
		QuestionsTable,
		LanguageEntriesTable,
		QuestionMasteryTable,
		EntryMasteryTable,
		SessionSummariesTable,
	}
)

func init() {
	ThemesTable.ForeignKeys[0].RefTable = UsersTable
	QuestionsTable.ForeignKeys[0].RefTable = ThemesTable
	LanguageEntriesTable.ForeignKeys[0].RefTable = ThemesTable
	QuestionMasteryTable.ForeignKeys[0].RefTable = UsersTable
	QuestionMasteryTable.ForeignKeys[1].RefTable = QuestionsTable
	EntryMasteryTable.ForeignKeys[0].RefTable = UsersTable
	EntryMasteryTable.ForeignKeys[1].RefTable = LanguageEntriesTable
	SessionSummariesTable.ForeignKeys[0].RefTable = UsersTable
}
