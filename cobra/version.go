/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package cobra

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

// License identifies the software license a Version is published under.
type License uint8

const (
	License_MIT License = iota
	License_Apache2
	License_GPL3
	License_Proprietary
)

func (l License) String() string {
	switch l {
	case License_MIT:
		return "MIT"
	case License_Apache2:
		return "Apache-2.0"
	case License_GPL3:
		return "GPL-3.0"
	case License_Proprietary:
		return "Proprietary"
	default:
		return "Unknown"
	}
}

// Version describes the build/release metadata printed by the --version
// flag and by the banner Init prints on startup.
type Version interface {
	GetHeader() string
	GetPackage() string
	GetDescription() string
	GetBuild() string
	GetRelease() string
	GetAuthor() string
	GetDate() string
	GetTime() time.Time
	GetAppId() string
	GetLicenseName() string
	GetRootPackagePath() string
}

type vrs struct {
	license License
	pkg     string
	desc    string
	date    time.Time
	build   string
	release string
	author  string
	prefix  string
	root    any
	appID   int
}

// NewVersion builds a Version from build-time metadata. date is parsed with
// a handful of common layouts; if it cannot be parsed the current time is
// used instead. root is any value living in the application's root package,
// used only to resolve that package's import path through reflection.
func NewVersion(license License, pkg, description, date, build, release, author, prefix string, root any, appID int) Version {
	t := parseVersionDate(date)

	return &vrs{
		license: license,
		pkg:     pkg,
		desc:    description,
		date:    t,
		build:   build,
		release: release,
		author:  author,
		prefix:  prefix,
		root:    root,
		appID:   appID,
	}
}

func parseVersionDate(date string) time.Time {
	layouts := []string{time.RFC3339, "2006-01-02", "2006-01-02T15:04:05", time.RFC1123}

	for _, l := range layouts {
		if t, e := time.Parse(l, date); e == nil {
			return t
		}
	}

	return time.Now()
}

func (v *vrs) GetHeader() string {
	return fmt.Sprintf("%s %s (%s) - %s", v.pkg, v.release, v.build, v.desc)
}

func (v *vrs) GetPackage() string {
	return v.pkg
}

func (v *vrs) GetDescription() string {
	return v.desc
}

func (v *vrs) GetBuild() string {
	return v.build
}

func (v *vrs) GetRelease() string {
	return v.release
}

func (v *vrs) GetAuthor() string {
	return v.author
}

func (v *vrs) GetDate() string {
	return v.date.Format(time.RFC3339)
}

func (v *vrs) GetTime() time.Time {
	return v.date
}

func (v *vrs) GetAppId() string {
	return fmt.Sprintf("%s/%d (%s)", runtime.Version(), v.appID, runtime.GOOS)
}

func (v *vrs) GetLicenseName() string {
	return v.license.String()
}

func (v *vrs) GetRootPackagePath() string {
	if v.root == nil {
		return v.prefix
	}

	t := reflect.TypeOf(v.root)
	if t == nil {
		return v.prefix
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if p := t.PkgPath(); p != "" {
		return p
	}

	return v.prefix
}
