package client_action

import "context"

type ClientService interface {
	SetActive(ctx context.Context, id int64, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
