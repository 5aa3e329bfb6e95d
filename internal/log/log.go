package log

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	User   string         `json:"user,omitempty"`
	Action string         `json:"action,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level, user, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, User: user, Action: action, Fields: fields}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(user, action string, fields map[string]any) { write("info", user, action, nil, fields) }
func Audit(user, action string, fields map[string]any) {
	write("audit", user, action, nil, fields)
}
func Warn(user, action string, fields map[string]any) {
	write("warn", user, action, nil, fields)
}
func Error(user, action string, err error, fields map[string]any) {
	write("error", user, action, err, fields)
}
