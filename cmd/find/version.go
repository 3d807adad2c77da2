package main

import "runtime/debug"

// Set with -ldflags "-X main.buildVersion=v1.2.3" by release builds.
var buildVersion string

var version = resolveVersion(buildVersion, readBuildInfo)

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

// resolveVersion picks, in order: the linker-provided version, the module
// version from `go install pkg@version`, or the short VCS revision.
func resolveVersion(linked string, info func() (*debug.BuildInfo, bool)) string {
	if linked != "" {
		return linked
	}

	bi, ok := info()
	if !ok {
		return "dev"
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	kv := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		kv[s.Key] = s.Value
	}

	rev := kv["vcs.revision"]
	if rev == "" {
		return "dev"
	}
	rev = rev[:min(len(rev), 7)]
	if kv["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}
