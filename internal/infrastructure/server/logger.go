package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
)

// NewLoggingInterceptor logs one line per unary call at a level derived from
// the resulting Connect code.
func NewLoggingInterceptor(logger logrus.FieldLogger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			duration := time.Since(start)
			code := connect.CodeOf(err)
			level := determineLogLevel(code, err)
			fields := buildLogFields(req, resp, code, duration, err)

			logger.WithFields(fields).Log(level, "request completed")

			return resp, err
		}
	}
}

func determineLogLevel(code connect.Code, err error) logrus.Level {
	if err == nil {
		return logrus.InfoLevel
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func buildLogFields(req connect.AnyRequest, resp connect.AnyResponse, code connect.Code, duration time.Duration, err error) logrus.Fields {
	fields := requestFields(req, duration)
	if err == nil {
		fields["status"] = "ok"
	} else {
		fields["status"] = code.String()
		fields[logrus.ErrorKey] = err.Error()
	}
	responseFields(fields, resp)
	return fields
}

func requestFields(req connect.AnyRequest, duration time.Duration) logrus.Fields {
	fields := logrus.Fields{
		"procedure": req.Spec().Procedure,
		"duration":  duration.String(),
	}

	setString(fields, "http_method", req.HTTPMethod())

	peer := req.Peer()
	setString(fields, "peer_addr", peer.Addr)
	setString(fields, "protocol", peer.Protocol)

	header := req.Header()
	setString(fields, "user_agent", header.Get("User-Agent"))
	setString(fields, "request_id", header.Get("X-Request-Id"))
	setString(fields, "user_id", header.Get("X-User-Id"))
	setString(fields, "client_ip", firstForwardedFor(header))
	setString(fields, "content_type", header.Get("Content-Type"))

	if cl := contentLength(header); cl >= 0 {
		fields["request_bytes"] = cl
	}
	return fields
}

func responseFields(fields logrus.Fields, resp connect.AnyResponse) {
	if resp == nil {
		return
	}
	if cl := contentLength(resp.Header()); cl >= 0 {
		fields["response_bytes"] = cl
	}
	if len(resp.Trailer()) > 0 {
		fields["response_trailer_count"] = headerCount(resp.Trailer())
	}
}

func setString(fields logrus.Fields, key, value string) {
	if value == "" {
		return
	}
	fields[key] = value
}

func firstForwardedFor(header http.Header) string {
	forwarded := header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	for _, part := range strings.Split(forwarded, ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}

func headerCount(header http.Header) int {
	count := 0
	for key := range header {
		count += len(header[key])
	}
	return count
}

func contentLength(header http.Header) int {
	if header == nil {
		return -1
	}
	if cl := header.Get("Content-Length"); cl != "" {
		if parsed, err := strconv.Atoi(cl); err == nil {
			return parsed
		}
	}
	return -1
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
