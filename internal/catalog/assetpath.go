package catalog

import "strings"

const assetsSegment = "assets"

// ResolveAssetPath turns a path recorded on whatever machine produced the
// catalog into a relative forward-slash reference under the bundled assets
// directory. It is a best-effort heuristic: the second return is false when
// nothing usable can be derived and the caller must fall back to a
// placeholder.
//
//	C:\Users\x\assets\woman\women6.jpg -> woman/women6.jpg
//	woman/women6.jpg                   -> woman/women6.jpg (already relative)
//	/abs/path/sin-assets.jpg           -> unresolvable
func ResolveAssetPath(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if rest, ok := afterAssetsSegment(s); ok {
		rest = strings.ReplaceAll(rest, `\`, "/")
		if rest == "" {
			return "", false
		}
		return rest, true
	}
	// No marker found. If it does not look absolute it already is a usable
	// relative reference.
	if !strings.Contains(s, `\`) && !strings.HasPrefix(s, "/") && !hasDrivePrefix(s) {
		return s, true
	}
	return "", false
}

// afterAssetsSegment finds the first path segment literally equal to "assets"
// under either separator convention and returns everything after it.
func afterAssetsSegment(s string) (string, bool) {
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], assetsSegment)
		if j < 0 {
			return "", false
		}
		j += i
		end := j + len(assetsSegment)
		startsSegment := j == 0 || s[j-1] == '/' || s[j-1] == '\\'
		followedBySep := end < len(s) && (s[end] == '/' || s[end] == '\\')
		if startsSegment && followedBySep {
			return s[end+1:], true
		}
		i = end
	}
	return "", false
}

func hasDrivePrefix(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
