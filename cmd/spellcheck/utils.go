package spellcheck

// The pick helpers resolve a setting from the CLI value first, then from
// config layers in the order given.

func pickString(cli string, layers ...*string) string {
	if cli != "" {
		return cli
	}
	for _, l := range layers {
		if l != nil && *l != "" {
			return *l
		}
	}
	return ""
}

func pickInt(cli int, layers ...*int) int {
	if cli != 0 {
		return cli
	}
	for _, l := range layers {
		if l != nil && *l != 0 {
			return *l
		}
	}
	return 0
}

func pickInt64(cli int64, layers ...*int64) int64 {
	if cli != 0 {
		return cli
	}
	for _, l := range layers {
		if l != nil && *l != 0 {
			return *l
		}
	}
	return 0
}

func pickBool(cli bool, layers ...*bool) bool {
	if cli {
		return true
	}
	for _, l := range layers {
		if l != nil {
			return *l
		}
	}
	return false
}

func strPtr(s string) *string { return &s }
func boolPtr(v bool) *bool    { return &v }
