/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package snag

import "dirpx.dev/snag/status"

// field is a bit in Options.set recording that an option was given
// explicitly, even when its value is the zero value.
type field uint16

const (
	fieldErr field = 1 << iota
	fieldMessage
	fieldShowMessageToClient
	fieldSetStatus
	fieldTag
	fieldAdditionalTags
	fieldBreadcrumbs
	fieldLevel
)

// Options is the record form of the constructor input. It is what E builds
// from functional options and what map input is decoded into.
//
// A field counts as present when it was set through an Option, when its key
// was present in a decoded map, or when it holds a non-zero value.
type Options struct {
	// Err is the original offending value.
	Err any `mapstructure:"error"`

	// Message is the explicit message. It wins over any extracted one.
	Message string `mapstructure:"message"`

	// ShowMessageToClient marks Message as safe for end users.
	ShowMessageToClient bool `mapstructure:"showMessageToClient"`

	// SetStatus selects the row of the status table to apply.
	SetStatus status.ID `mapstructure:"setStatus"`

	// Tag is the explicit primary tag.
	Tag Tag `mapstructure:"tag"`

	// AdditionalTags are secondary tags.
	AdditionalTags []Tag `mapstructure:"additionalTags"`

	// Breadcrumbs is debugging context.
	Breadcrumbs []any `mapstructure:"breadcrumbs"`

	// Level is the severity.
	Level Level `mapstructure:"level"`

	set   field
	owned bool
}

// has reports whether f is present.
func (o *Options) has(f field) bool {
	if o.set&f != 0 {
		return true
	}
	switch f {
	case fieldErr:
		return o.Err != nil
	case fieldMessage:
		return o.Message != ""
	case fieldShowMessageToClient:
		return o.ShowMessageToClient
	case fieldSetStatus:
		return o.SetStatus != ""
	case fieldTag:
		return o.Tag != ""
	case fieldAdditionalTags:
		return o.AdditionalTags != nil
	case fieldBreadcrumbs:
		return o.Breadcrumbs != nil
	case fieldLevel:
		return o.Level != ""
	}
	return false
}

// Option is a functional option for E, (*Error).Add and (*Error).New.
type Option func(*Options)

// WithError sets the original offending value.
func WithError(v any) Option {
	return func(o *Options) {
		o.Err = v
		o.set |= fieldErr
	}
}

// WithMessage sets the message explicitly.
func WithMessage(msg string) Option {
	return func(o *Options) {
		o.Message = msg
		o.set |= fieldMessage
	}
}

// WithShowMessageToClient marks the message as safe (or not) for end users.
func WithShowMessageToClient(show bool) Option {
	return func(o *Options) {
		o.ShowMessageToClient = show
		o.set |= fieldShowMessageToClient
	}
}

// WithStatus selects the status table row to apply.
func WithStatus(id status.ID) Option {
	return func(o *Options) {
		o.SetStatus = id
		o.set |= fieldSetStatus
	}
}

// WithTag sets the primary tag, overriding inference.
func WithTag(t Tag) Option {
	return func(o *Options) {
		o.Tag = t
		o.set |= fieldTag
	}
}

// WithAdditionalTags sets secondary tags. The slice is borrowed unless
// WithOwnedSlices is also given.
func WithAdditionalTags(tags ...Tag) Option {
	return func(o *Options) {
		o.AdditionalTags = tags
		o.set |= fieldAdditionalTags
	}
}

// WithBreadcrumbs sets debugging context. The slice is borrowed unless
// WithOwnedSlices is also given.
func WithBreadcrumbs(crumbs ...any) Option {
	return func(o *Options) {
		o.Breadcrumbs = crumbs
		o.set |= fieldBreadcrumbs
	}
}

// WithLevel sets the severity.
func WithLevel(l Level) Option {
	return func(o *Options) {
		o.Level = l
		o.set |= fieldLevel
	}
}

// WithOwnedSlices makes construction copy AdditionalTags and Breadcrumbs
// instead of aliasing the caller's slices.
func WithOwnedSlices() Option {
	return func(o *Options) {
		o.owned = true
	}
}

// apply folds opts into a fresh Options value. Nil options are skipped.
func apply(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
