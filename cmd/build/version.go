// Package build contains information about the build that injected at build-time.
//
// To use this package, simply import it in your program, then add build
// arguments like the following:
//
//	go build -ldflags "-X github.com/onflow/flow-crowdfund/cmd/build.semverString=v1.0.0"
package build

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Default value for build-time-injected version strings.
const undefined = "undefined"

// The following variables are injected at build-time using ldflags.
var (
	semverString string
	commit       string
)

// Version returns the raw version string of this build.
func Version() string {
	return semverString
}

// Commit returns the commit at which this build was created.
func Commit() string {
	return commit
}

// IsDefined determines whether a version string is defined. Inject-able
// strings default to "undefined".
func IsDefined(v string) bool {
	return v != undefined
}

// Semver returns the semantic version of this build, or nil if the build
// was not given a valid one.
func Semver() *semver.Version {
	return parseSemver(semverString)
}

func parseSemver(s string) *semver.Version {
	if !IsDefined(s) {
		return nil
	}
	ver, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil
	}
	return ver
}

// If any of the build-time-injected variables are empty at initialization,
// mark them as undefined.
func init() {
	if len(semverString) == 0 {
		semverString = undefined
	}
	if len(commit) == 0 {
		commit = undefined
	}
}
