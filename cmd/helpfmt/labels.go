package main

import (
	"strings"

	"github.com/google/shlex"
	"github.com/napalu/helpfmt/errs"
)

// parseLabelSpec splits spec like a shell would and reads each word as KEY=VALUE. Keys are
// upper-cased so they match the label key constants.
func parseLabelSpec(spec string) (map[string]string, error) {
	words, err := shlex.Split(spec)
	if err != nil {
		return nil, errs.ErrInvalidLabelSpec.WithArgs(spec).Wrap(err)
	}

	labels := make(map[string]string, len(words))
	for _, word := range words {
		key, value, ok := strings.Cut(word, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errs.ErrInvalidLabelSpec.WithArgs(word)
		}
		labels[strings.ToUpper(key)] = value
	}

	return labels, nil
}
