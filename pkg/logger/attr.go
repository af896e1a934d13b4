package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Brand records the brand name under the key "brand".
func Brand(name string) slog.Attr {
	return slog.String("brand", name)
}

// Email records a subscriber address under the key "email".
func Email(addr string) slog.Attr {
	return slog.String("email", addr)
}

// Source records the signup source under the key "source".
func Source(source string) slog.Attr {
	return slog.String("source", source)
}
