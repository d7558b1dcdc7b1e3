// This file is part of CoreBoy.
//
// CoreBoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoreBoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoreBoy.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/sganesh456/CoreBoy/logger"
	"github.com/sganesh456/CoreBoy/test"
)

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	logger.Log("test", "hello")
	logger.Log("test", "hello")
	logger.Log("test", "hello")

	s := strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(&s))
	test.Equate(t, s.String(), "test: hello (repeat x3)\n")

	// a different detail breaks the run
	logger.Log("test", "goodbye")
	s.Reset()
	logger.Write(&s)
	test.Equate(t, s.String(), "test: hello (repeat x3)\ntest: goodbye\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	s := strings.Builder{}
	logger.Tail(&s, 2)
	test.Equate(t, s.String(), "test: two\ntest: three\n")

	// asking for more entries than exist is not an error
	s.Reset()
	logger.Tail(&s, 100)
	test.Equate(t, s.String(), "test: one\ntest: two\ntest: three\n")
}

func TestClear(t *testing.T) {
	logger.Clear()

	logger.Logf("test", "%d plus %d", 1, 2)

	s := strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(&s))
	test.Equate(t, s.String(), "test: 1 plus 2\n")

	logger.Clear()
	s.Reset()
	test.ExpectedFailure(t, logger.Write(&s))
	test.Equate(t, s.String(), "")
}
