/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package config provides the configuration structures and validation for the
// logger package.
//
// # Overview
//
// The config package defines the configuration model consumed by the logger
// package: a stdout/stderr sink with its own formatting options, an optional
// inheritance mechanism for layering instance options on top of a shared
// default, and validation via go-playground/validator.
//
// # Basic Usage
//
//	opts := &config.Options{
//	    Stdout: &config.OptionsStd{
//	        DisableStandard:  false, // enable stdout
//	        DisableStack:     true,  // no goroutine ID
//	        DisableTimestamp: false, // show timestamps
//	        EnableTrace:      true,  // show caller info
//	        DisableColor:     false, // allow colors (if TTY)
//	    },
//	}
//
//	if err := opts.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Inheritance
//
//	defaultConfig := func() *config.Options {
//	    return &config.Options{
//	        Stdout: &config.OptionsStd{EnableTrace: true, DisableStack: true},
//	    }
//	}
//
//	opts := &config.Options{
//	    InheritDefault: true,
//	    TraceFilter:    "/myproject/",
//	}
//	opts.RegisterDefaultFunc(defaultConfig)
//
//	final := opts.Options() // merged view
//
// # Trace Filtering
//
// TraceFilter trims a path prefix from stack trace entries so caller
// locations read as "main.go:42" instead of the full build path.
//
// # Default Configuration
//
//	defaultJSON := config.DefaultConfig("")
//	prettyJSON := config.DefaultConfig("  ")
//
//	var opts config.Options
//	_ = json.Unmarshal(defaultJSON, &opts)
//
// # Cloning and Merging
//
// Clone produces an independent copy; Merge layers a second Options onto the
// receiver, only overwriting fields the override actually sets.
//
// # Error Handling
//
// Two error codes are registered under the package's CodeError range:
//
//   - ErrorParamEmpty: a required parameter was empty or nil
//   - ErrorValidatorError: Validate found one or more constraint violations
package config
