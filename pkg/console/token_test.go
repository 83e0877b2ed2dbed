package console

import "testing"

func TestSplitFilterToken(t *testing.T) {
	tests := []struct {
		token string
		key   string
		op    Op
		value string
	}{
		{"speed=90", "speed", OpEq, "90"},
		{"speed<90", "speed", OpLt, "90"},
		{"speed>90", "speed", OpGt, "90"},
		{"speed<=90", "speed", OpLe, "90"},
		{"speed>=90", "speed", OpGe, "90"},
		{"speed<>90", "speed", OpNe, "90"},
		{"crashed", "crashed", OpNone, ""},
		{"group=night expresses", "group", OpEq, "night expresses"},
		{"=90", "", OpEq, "90"},
		{"speed=", "speed", OpEq, ""},
		// Only the first operator splits; the rest stays in the value.
		{"a=b=c", "a", OpEq, "b=c"},
	}
	for _, tt := range tests {
		key, op, value := splitFilterToken(tt.token)
		if key != tt.key || op != tt.op || value != tt.value {
			t.Errorf("splitFilterToken(%q) = (%q, %v, %q), want (%q, %v, %q)",
				tt.token, key, op, value, tt.key, tt.op, tt.value)
		}
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{
		OpEq: "=", OpNe: "<>", OpLt: "<", OpLe: "<=", OpGe: ">=", OpGt: ">", OpNone: "",
	} {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}
