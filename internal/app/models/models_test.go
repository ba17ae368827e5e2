package models

import (
	"encoding/json"
	"testing"
)

func TestYearLevel_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    YearLevel
		wantErr bool
	}{
		{`3`, 3, false},
		{`"2"`, 2, false},
		{`" 4 "`, 4, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"second"`, 0, true},
		{`2.5`, 0, true},
		{`2147483647`, 2147483647, false},
		{`4294967297`, 0, true},
		{`"2147483648"`, 0, true},
		{`-2147483649`, 0, true},
	}

	for _, tt := range tests {
		var s struct {
			YearLevel YearLevel `json:"yearlevel"`
		}
		err := json.Unmarshal([]byte(`{"yearlevel":`+tt.in+`}`), &s)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: unexpected error state: %v", tt.in, err)
			continue
		}
		if !tt.wantErr && s.YearLevel != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.in, tt.want, s.YearLevel)
		}
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	out, err := json.Marshal(User{ID: 1, Username: "alice", Email: "a@x.com", Password: "$2a$hash"})
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["userpass"]; ok {
		t.Error("userpass must not be serialized")
	}
	if len(m) != 3 {
		t.Errorf("expected userid, username, useremail only, got %v", m)
	}
}
