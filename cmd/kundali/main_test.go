package main

import "testing"

func TestConfigDirFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"derive", "--name", "test"}, ""},
		{"separate argument", []string{"--config", "/etc/kundali", "derive"}, "/etc/kundali"},
		{"equals form", []string{"--config=/etc/kundali", "derive"}, "/etc/kundali"},
		{"last occurrence wins", []string{"--config", "a", "--config=b"}, "b"},
		{"dangling flag", []string{"derive", "--config"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configDirFromArgs(tt.args); got != tt.want {
				t.Errorf("configDirFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
