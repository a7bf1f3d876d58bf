// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package tool

import (
	"errors"
	"strings"
)

// ListFlag is a flag value holding a comma-separated list, e.g. -encoders=zext4,sext2.
type ListFlag []string

func (list *ListFlag) String() string {
	return strings.Join(*list, ",")
}

// Set parses the flag value. The flag can be specified only once.
func (list *ListFlag) Set(value string) error {
	if len(*list) > 0 {
		return errors.New("list flag is already set")
	}
	for _, elem := range strings.Split(value, ",") {
		if elem = strings.TrimSpace(elem); elem != "" {
			*list = append(*list, elem)
		}
	}
	return nil
}
