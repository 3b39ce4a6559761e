package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version represents the current version of m68kdis.
type Version struct {
	Major    string
	Minor    string
	Patch    string
	Metadata string
	Build    string
}

// M68kdisVersion is the current version of m68kdis.
var M68kdisVersion = Version{
	Major: "0", Minor: "3", Patch: "0", Metadata: "",
	Build: "$Id$",
}

func (v Version) String() string {
	fixBuild(&v)
	ver := fmt.Sprintf("Version: %s.%s.%s", v.Major, v.Minor, v.Patch)
	if v.Metadata != "" {
		ver += "-" + v.Metadata
	}
	return fmt.Sprintf("%s\nBuild: %s", ver, v.Build)
}

// BuildInfo returns the Go version and, when available, the module
// dependencies the binary was built with.
func BuildInfo() string {
	var sb strings.Builder
	sb.WriteString(runtime.Version())
	sb.WriteByte('\n')
	info, ok := debug.ReadBuildInfo()
	if !ok {
		sb.WriteString("not built in module mode\n")
		return sb.String()
	}
	writeModule(&sb, "mod", &info.Main)
	for _, dep := range info.Deps {
		writeModule(&sb, "dep", dep)
	}
	return sb.String()
}

func writeModule(sb *strings.Builder, kind string, m *debug.Module) {
	fmt.Fprintf(sb, " %s\t%s\t%s", kind, m.Path, m.Version)
	if m.Replace != nil {
		fmt.Fprintf(sb, "\t=> %s\t%s", m.Replace.Path, m.Replace.Version)
	}
	sb.WriteByte('\n')
}

func fixBuild(v *Version) {
	// Return if v.Build already set, but not if it is Git ident expand file blob hash
	if !strings.HasPrefix(v.Build, "$Id$") {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			v.Build = setting.Value
			return
		}
	}
}
