// Package checks defines the shared compute-compare shape used by the
// engineering and ignition validation suites.
package checks

// Check is one computed quantity compared against an engineering limit.
type Check struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Limit  float64 `json:"limit"`
	Detail string  `json:"detail"`
	Pass   bool    `json:"pass"`
}

// Below builds a check that passes while value stays under limit.
func Below(name string, value, limit float64, detail string) Check {
	return Check{Name: name, Value: value, Limit: limit, Detail: detail, Pass: value < limit}
}

// Above builds a check that passes while value stays over limit.
func Above(name string, value, limit float64, detail string) Check {
	return Check{Name: name, Value: value, Limit: limit, Detail: detail, Pass: value > limit}
}

// Within builds a check that passes while value lies strictly between lo
// and hi. The recorded limit is the upper bound.
func Within(name string, value, lo, hi float64, detail string) Check {
	return Check{Name: name, Value: value, Limit: hi, Detail: detail, Pass: value > lo && value < hi}
}

// AllPass reports whether every check passed.
func AllPass(cs []Check) bool {
	for _, c := range cs {
		if !c.Pass {
			return false
		}
	}
	return true
}
