package logger

import (
	"log/slog"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		message   string
		separator string
		want      string
	}{
		{
			name:      "single field",
			fields:    []string{"password"},
			message:   "name=bob;password=hunter2;ip=1.2.3.4;",
			separator: ";",
			want:      "name=bob;password=***;ip=1.2.3.4;",
		},
		{
			name:      "multiple fields",
			fields:    []string{"email", "ssn"},
			message:   "email=a@b.com;ssn=123-45-6789;level=info;",
			separator: ";",
			want:      "email=***;ssn=***;level=info;",
		},
		{
			name:      "no matching field",
			fields:    []string{"password"},
			message:   "status=ok;count=3;",
			separator: ";",
			want:      "status=ok;count=3;",
		},
		{
			name:      "no fields",
			fields:    nil,
			message:   "password=hunter2;",
			separator: ";",
			want:      "password=hunter2;",
		},
		{
			name:      "different separator",
			fields:    []string{"phone"},
			message:   "phone=555-1234,name=bob",
			separator: ",",
			want:      "phone=***,name=bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.fields, Redaction, tt.message, tt.separator)
			if got != tt.want {
				t.Errorf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRedactAttr(t *testing.T) {
	a := redactAttr(nil, slog.String("email", "a@b.com"))
	if a.Value.String() != Redaction {
		t.Errorf("email attr not redacted: %q", a.Value.String())
	}

	a = redactAttr(nil, slog.String("status", "ok"))
	if a.Value.String() != "ok" {
		t.Errorf("non-PII attr was redacted: %q", a.Value.String())
	}
}
