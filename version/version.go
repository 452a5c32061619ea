package version

import (
	"fmt"
	"runtime/debug"
)

type vcsInfo struct {
	vcs      string
	revision string
	ts       string
	modified bool
}

// String is the text printed by the --version flag of the named tool.
func String(tool string) string {
	return fmt.Sprintf("%s %s", tool, FromBuildInfo())
}

func FromBuildInfo() (version string) {
	version = "unavailable"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	return fromSettings(info.Settings)
}

func fromSettings(settings []debug.BuildSetting) string {
	var vi vcsInfo

	for i := range settings {
		switch settings[i].Key {
		case "vcs":
			vi.vcs = settings[i].Value
		case "vcs.revision":
			vi.revision = settings[i].Value
		case "vcs.time":
			vi.ts = settings[i].Value
		case "vcs.modified":
			vi.modified = settings[i].Value == "true"
		default:
			continue
		}
	}

	if vi.revision == "" {
		return "unavailable"
	}

	dirty := ""
	if vi.modified {
		dirty = " (modified)"
	}

	if vi.ts == "" {
		return fmt.Sprintf("built from %s revision %s%s", vi.vcs, vi.revision, dirty)
	}

	return fmt.Sprintf("built from %s revision %s at %s%s", vi.vcs, vi.revision, vi.ts, dirty)
}
