// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/utils"
	"math/big"
	"strings"
	"time"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

func checkPort(port uint) *ValidResult {
	if port <= 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}

func parseDuration(field, value string, target *time.Duration) *ValidResult {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return ValidFailWith(fmt.Errorf("invalid json field %s", field), err)
	}
	*target = duration
	return ValidPass()
}

// ParseValue converts a decimal amount of native units ("0.5", "10") into sub-units
func ParseValue(value string) (int64, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(value))
	if !ok {
		return 0, fmt.Errorf("%q is not a decimal value", value)
	}
	rat.Mul(rat, new(big.Rat).SetInt64(global.SubUnitsPerUnit))
	if !rat.IsInt() {
		return 0, fmt.Errorf("%q has more precision than one sub-unit", value)
	}
	if !rat.Num().IsInt64() {
		return 0, fmt.Errorf("%q is out of range", value)
	}
	return rat.Num().Int64(), nil
}

func parseValue(field, value string, target *int64) *ValidResult {
	amount, err := ParseValue(value)
	if err != nil {
		return ValidFailWith(fmt.Errorf("invalid json field %s", field), err)
	}
	*target = amount
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type Version struct {
	major   int
	minor   int
	patch   int
	version string
}

func newVersion(version string) (*Version, error) {
	versions := strings.Split(version, ".")
	if len(versions) < 3 {
		return nil, errors.New("invalid version String")
	}
	return &Version{
		major:   utils.StrToInt(versions[0], 0),
		minor:   utils.StrToInt(versions[1], 0),
		patch:   utils.StrToInt(versions[2], 0),
		version: version,
	}, nil
}

func (v *Version) checkVersion(version *Version) checkVersionResult {
	if v.major != version.major {
		return MajorUnmatch
	}
	if v.minor != version.minor {
		return MinorUnmatch
	}
	if v.patch != version.patch {
		return PatchUnmatch
	}
	return AllMatch
}

func (v *Version) String() string {
	return v.version
}
