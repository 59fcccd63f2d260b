package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/itsatony/go-pom"
	"gopkg.in/yaml.v3"
)

// versionInfo is reported by the version command
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsFile is the layout of versions.yaml
type versionsFile struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time string `yaml:"time"`
	} `yaml:"build"`
}

// Build settings recorded by the go toolchain
const (
	buildSettingRevision = "vcs.revision"
	buildSettingTime     = "vcs.time"
)

// versionsFileName is read from the working directory only
const versionsFileName = "versions.yaml"

func runVersion(args []string, stdout, stderr io.Writer) int {
	format, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	info := collectVersionInfo(versionsFileName)

	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (string, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if format != OutputFormatText && format != OutputFormatJSON {
		return "", errors.New(ErrMsgInvalidFormat)
	}
	return format, nil
}

// collectVersionInfo starts from the library version and the binary's build
// info, then applies the versions file at path when it can be read.
func collectVersionInfo(path string) *versionInfo {
	info := &versionInfo{
		Version:   pom.Version,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case buildSettingRevision:
				info.Commit = s.Value
			case buildSettingTime:
				info.BuildTime = s.Value
			}
		}
	}

	if data, err := os.ReadFile(path); err == nil {
		var vf versionsFile
		if err := yaml.Unmarshal(data, &vf); err == nil {
			applyVersionsFile(info, &vf)
		}
	}

	return info
}

// knownValue reports whether a versions file value should override
func knownValue(v string) bool {
	return v != "" && v != VersionUnknown
}

// applyVersionsFile overrides info with the file's values, skipping
// placeholders so build info recorded by the toolchain survives.
func applyVersionsFile(info *versionInfo, vf *versionsFile) {
	if knownValue(vf.Project.Version) {
		info.Version = vf.Project.Version
	}
	if knownValue(vf.Git.Commit) {
		info.Commit = vf.Git.Commit
	}
	if knownValue(vf.Git.Branch) {
		info.Branch = vf.Git.Branch
	}
	if knownValue(vf.Build.Time) {
		info.BuildTime = vf.Build.Time
	}
}
