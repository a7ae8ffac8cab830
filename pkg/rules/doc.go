// Package rules provides reusable predicates for common checks on strings,
// numbers, collections, formats and UUIDs.
//
// Every constructor returns a Rule[T], which is simply func(T) bool. Rules hold
// no state beyond their parameters, are safe for concurrent use, and compose
// with All, Any and Not. They carry no messages or
// field names: reporting a failure is the caller's business, typically through
// the onFail callback of a validation step.
//
// # Usage
//
//	import (
//	    "github.com/teamolhuang/BeingValidated/pkg/rules"
//	    "github.com/teamolhuang/BeingValidated/pkg/validation"
//	)
//
//	ok := validation.Wrap(user.Email, true).
//	    Validate(validation.Check(rules.NotBlank()), nil, nil).
//	    Validate(validation.Check(rules.Email()), onBadEmail, nil).
//	    IsValid()
//
//	tags := validation.WrapSlice(post.Tags, false).
//	    Validate(validation.Check(rules.All(rules.NotBlank(), rules.MaxLen(32))), onBadTag, nil)
//
// # Families
//
//   - strings: NotBlank, MinLen, MaxLen, Len, Alphanumeric, NoWhitespace,
//     Matches, EqualFold, OneOfFold (Unicode case folding via golang.org/x/text)
//   - numbers: Min, Max, Between, Positive, NonZero
//   - collections: NotEmpty, MinItems, MaxItems, Unique
//   - choice: In, NotIn
//   - formats: Email, URL, URLWithScheme
//   - UUIDs: UUID, UUIDVersion, NotNilUUID (github.com/google/uuid)
//
// String lengths are counted in runes, not bytes.
package rules
