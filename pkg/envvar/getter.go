package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	return str, true
}

func Int(n string, args ...int) (int, bool) {
	defaultValue := 0
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as int, incorrect format", str)
		return defaultValue, false
	}

	return num, true
}

// Float returns the float64 value of the environment variable named n.
func Float(n string, args ...float64) (float64, bool) {
	defaultValue := 0.0
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as float, incorrect format", str)
		return defaultValue, false
	}

	return num, true
}

// IntSlice parses a comma separated list of integers, e.g. "610,377,233"
func IntSlice(n string, args ...[]int) ([]int, bool) {
	var defaultValue []int
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	var nums []int
	for _, s := range strings.Split(str, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		num, err := strconv.Atoi(s)
		if err != nil {
			logrus.WithError(err).Errorf("can not parse env var %q as int list, incorrect format", str)
			return defaultValue, false
		}

		nums = append(nums, num)
	}

	return nums, true
}

func Bool(n string, args ...bool) (bool, bool) {
	defaultValue := false
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.ParseBool(strings.TrimSpace(str))
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as bool, incorrect format", str)
		return defaultValue, false
	}

	return num, true
}

func SetString(n string, v *string) bool {
	s, ok := String(n)
	if ok && s != "" {
		*v = s
		return true
	}

	return false
}

func SetInt(n string, v *int) bool {
	i, ok := Int(n)
	if ok {
		*v = i
	}

	return ok
}

func SetFloat(n string, v *float64) bool {
	f, ok := Float(n)
	if ok {
		*v = f
	}

	return ok
}

func SetIntSlice(n string, v *[]int) bool {
	s, ok := IntSlice(n)
	if ok && len(s) > 0 {
		*v = s
		return true
	}

	return false
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}
