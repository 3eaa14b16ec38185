package cli

import "strings"

// normalizeArgs rewrites the documented argument forms that pflag cannot
// express natively: the two-character alias -c2, and the greedy value list
// of -f/--formats ("-f hex rgb" means two tokens for one flag). Everything
// else passes through untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-c2":
			out = append(out, "--color2")
		case strings.HasPrefix(arg, "-c2="):
			out = append(out, "--color2="+arg[len("-c2="):])
		case arg == "-f" || arg == "--formats":
			consumed := 0
			for i+1+consumed < len(args) && !strings.HasPrefix(args[i+1+consumed], "-") {
				out = append(out, "--formats", args[i+1+consumed])
				consumed++
			}
			if consumed == 0 {
				// No value followed; keep the bare flag so pflag
				// reports the missing argument.
				out = append(out, "--formats")
			}
			i += consumed
		default:
			out = append(out, arg)
		}
	}
	return out
}
