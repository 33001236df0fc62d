package rvg

import "testing"

func TestDebugModeDoesNotAlterOutput(t *testing.T) {
	prev := Debug
	defer func() { Debug = prev }()

	Debug = true
	srcDebug := newTestState(42)
	withDebug := GenerateCBS(squareCDF, srcDebug)

	Debug = false
	srcPlain := newTestState(42)
	withoutDebug := GenerateCBS(squareCDF, srcPlain)

	if withDebug != withoutDebug {
		t.Errorf("enabling Debug changed GenerateCBS's output: %v vs %v", withDebug, withoutDebug)
	}
}
