// Package license produces the license_text variable for the license a
// project was generated with.
package license

import (
	"fmt"
	"strings"
)

const (
	MIT    = "MIT"
	Apache = "Apache-2.0"

	// None generates no LICENSE file; templates exclude it with a rule on
	// the license variable
	None = "None"
)

const mitText = `MIT License

Copyright (c) %s %s

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

const apacheText = `Apache License
Version 2.0, January 2004
http://www.apache.org/licenses/

Copyright %s %s

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

// Known lists the license names with full texts
var Known = []string{MIT, Apache}

// Text returns the license body for name. Unknown names get a plain
// copyright line; None returns an empty string.
func Text(name, author, year string) string {
	switch strings.TrimSpace(name) {
	case MIT:
		return fmt.Sprintf(mitText, year, author)
	case Apache:
		return fmt.Sprintf(apacheText, year, author)
	case None, "":
		return ""
	default:
		return fmt.Sprintf("Copyright (c) %s %s. All rights reserved.", year, author)
	}
}
