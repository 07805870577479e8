// Package urlutil provides query-string editing over raw URL strings.
//
// Each function parses the input, edits its query components, and
// reassembles the result. Failures fall into exactly two kinds, exposed as
// sentinel errors compatible with errors.Is: [ErrParse] when the input
// cannot be split into components, and [ErrBuild] when the edited
// components cannot be reassembled into a valid URL.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrParse indicates the input string could not be parsed into URL components.
var ErrParse = errors.New("urlutil: cannot parse URL components")

// ErrBuild indicates the modified components could not be reassembled into
// a valid URL.
var ErrBuild = errors.New("urlutil: cannot rebuild URL from components")

// SetQueryParam returns rawURL with the query parameter key set to value,
// replacing any existing values for that key. The rest of the URL is
// preserved.
func SetQueryParam(rawURL, key, value string) (string, error) {
	return editQuery(rawURL, func(q url.Values) {
		q.Set(key, value)
	})
}

// AddQueryParam returns rawURL with value appended to the query parameter
// key, keeping any existing values.
func AddQueryParam(rawURL, key, value string) (string, error) {
	return editQuery(rawURL, func(q url.Values) {
		q.Add(key, value)
	})
}

// DeleteQueryParam returns rawURL with every value of the query parameter
// key removed. Deleting an absent key is not an error.
func DeleteQueryParam(rawURL, key string) (string, error) {
	return editQuery(rawURL, func(q url.Values) {
		q.Del(key)
	})
}

// QueryParam returns the first value of the query parameter key.
// The second return value reports whether the key is present.
func QueryParam(rawURL, key string) (string, bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrParse, err)
	}
	q := u.Query()
	if _, ok := q[key]; !ok {
		return "", false, nil
	}
	return q.Get(key), true, nil
}

// editQuery parses rawURL, lets edit mutate its query values, and
// reassembles the URL. The output is re-parsed as a round-trip check so
// that a reconstruction failure surfaces as ErrBuild instead of a bad URL
// propagating to the caller.
func editQuery(rawURL string, edit func(url.Values)) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	q := u.Query()
	edit(q)
	u.RawQuery = q.Encode()

	out := u.String()
	if _, err := url.Parse(out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return out, nil
}
