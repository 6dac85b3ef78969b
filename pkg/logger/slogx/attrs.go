package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("err", "<nil>")
	}

	return slog.String("err", err.Error())
}

func MindID(id uint64) slog.Attr {
	return slog.Uint64("mind_id", id)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
