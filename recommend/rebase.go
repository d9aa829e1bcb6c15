package recommend

import "strings"

// rebase rewrites a fully-qualified method name so its declaring type is
// receiverType, leaving the "." and everything after it untouched. This is
// a pure string transform, independent of the inference core, per spec.md
// §9's "method-name rebasing" design note.
func rebase(receiverType, method string) string {
	if idx := strings.IndexByte(method, '.'); idx >= 0 {
		return receiverType + method[idx:]
	}
	return receiverType + "." + method
}
