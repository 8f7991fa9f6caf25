/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lce

import "fmt"

// Error is the error type returned by Construct for malformed input or
// parameters. Callers can errors.As into this
// type and switch on Code() to pick a process exit code.
type Error struct {
	code    int
	message string
}

// NewError creates an Error with the given ERR_* code and message.
func NewError(code int, message string) *Error {
	return &Error{code: code, message: message}
}

// Code returns one of the ERR_* constants defined in Definitions.go.
func (this *Error) Code() int {
	return this.code
}

func (this *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", this.message, this.code)
}
