package interp

import "testing"

func TestGenerateTAC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"Straight Line",
			"int x, y; x = 5; y = x + 2; print(y);",
			`DECLARE x
DECLARE y
x = 5
t1 = x + 2
y = t1
PRINT y
`,
		},
		{
			"Nested Arithmetic",
			"int a; a = (1 + 2) * (3 - 4);",
			`DECLARE a
t1 = 1 + 2
t2 = 3 - 4
t3 = t1 * t2
a = t3
`,
		},
		{
			"Print Literal",
			"print(7);",
			`PRINT 7
`,
		},
		{
			"If Without Else",
			"int x; if (x == 0) { print(1); }",
			`DECLARE x
t1 = x == 0
IFZ t1 GOTO L0
PRINT 1
L0:
`,
		},
		{
			"If Else",
			"int x; if (x < 1) { x = 1; } else { x = 2; }",
			`DECLARE x
t1 = x < 1
IFZ t1 GOTO L0
x = 1
GOTO L1
L0:
x = 2
L1:
`,
		},
		{
			"While",
			"int i; while (i < 3) { print(i); i = i + 1; }",
			`DECLARE i
L0:
t1 = i < 3
IFZ t1 GOTO L1
PRINT i
t2 = i + 1
i = t2
GOTO L0
L1:
`,
		},
		{
			"Arithmetic In Condition",
			"int i; while (i + 1 < 4 - 2) { i = 9; }",
			`DECLARE i
L0:
t1 = i + 1
t2 = 4 - 2
t3 = t1 < t2
IFZ t3 GOTO L1
i = 9
GOTO L0
L1:
`,
		},
		{
			"If Inside While",
			"int i; while (i < 2) { if (i == 0) { print(0); } i = i + 1; }",
			`DECLARE i
L0:
t1 = i < 2
IFZ t1 GOTO L1
t2 = i == 0
IFZ t2 GOTO L2
PRINT 0
L2:
t3 = i + 1
i = t3
GOTO L0
L1:
`,
		},
		{
			"Division Flattens Like Any Operator",
			"int a; a = 10 / 0;",
			`DECLARE a
t1 = 10 / 0
a = t1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseSource(t, tt.input)
			if got := GenerateTAC(prog); got != tt.want {
				t.Errorf("listing mismatch\nGot:\n%s\nWant:\n%s", got, tt.want)
			}
		})
	}
}

// Counters restart per call, so the same AST always yields the same listing.
func TestGenerateTACDeterministic(t *testing.T) {
	prog := parseSource(t, "int i; while (i < 3) { if (i == 1) { print(i); } i = i + 1; }")
	first := GenerateTAC(prog)
	second := GenerateTAC(prog)
	if first != second {
		t.Errorf("repeated generation diverged\nFirst:\n%s\nSecond:\n%s", first, second)
	}
}
