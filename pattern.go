package goshape

import (
	"regexp"
	"sync"
)

// patternCache memoizes compiled regular expressions by source string. It is
// process-wide and append-only; concurrent callers may race to insert the
// same entry but compilation is idempotent per source, so either result is
// equivalent.
var patternCache sync.Map // string -> *regexp.Regexp

func compilePattern(src string) (*regexp.Regexp, error) {
	if v, ok := patternCache.Load(src); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	patternCache.Store(src, re)
	return re, nil
}
