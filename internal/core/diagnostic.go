package core

func FormatDiagnostic(action Action, src, dst string) string {
	return action.Verb() + " " + src + " to " + dst
}
