/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package log is the leveled logger shared by the go-pattern server and CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LogPrefix  = "[go-pattern] "
	HelpLevels = "Must be one of: error, warning, info, debug."
)

const (
	ErrorLevel LogLevel = iota
	WarningLevel
	InfoLevel
	DebugLevel
)

var levelNames = map[string]LogLevel{
	"error":   ErrorLevel,
	"warning": WarningLevel,
	"info":    InfoLevel,
	"debug":   DebugLevel,
}

var levelPrefixes = map[LogLevel]string{
	ErrorLevel:   "[error] ",
	WarningLevel: "[warn] ",
	InfoLevel:    "[info] ",
	DebugLevel:   "[debug] ",
}

type Logger struct {
	level LogLevel
	*log.Logger
}

var logger = &Logger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, LogPrefix, log.LstdFlags),
}

func SetLevel(strLevel string) error {
	level, ok := levelNames[strLevel]
	if !ok {
		return errors.New("Wrong log level. " + HelpLevels)
	}
	logger.level = level
	return nil
}

func Init(out io.Writer, strLevel string) {
	logger.SetOutput(out)
	if err := SetLevel(strLevel); err != nil {
		panic(err)
	}
}

func logf(level LogLevel, format string, v ...interface{}) {
	if logger.level >= level {
		logger.Println(fmt.Sprintf(levelPrefixes[level]+format, v...))
	}
}

func Error(format string, v ...interface{}) {
	logf(ErrorLevel, format, v...)
}

func Warning(format string, v ...interface{}) {
	logf(WarningLevel, format, v...)
}

func Info(format string, v ...interface{}) {
	logf(InfoLevel, format, v...)
}

func Debug(format string, v ...interface{}) {
	logf(DebugLevel, format, v...)
}
