// Package document loads the file shown by the pager.
//
// # Overview
//
// A document is the ordered list of lines of one text file, read once at
// startup and never modified afterwards. Load opens the file and hands the
// content to Read, which does the splitting.
//
// # Line Splitting
//
// Read accepts all three common terminators:
//
//   - "\n" (Unix)
//   - "\r\n" (Windows)
//   - "\r" (classic Mac)
//
// Terminators are stripped. A terminator at the very end of the input does not
// produce an extra empty line, so "a\nb\n" and "a\nb" both yield two lines.
// An empty file yields an empty, non-nil slice.
//
// # Performance Considerations
//
//   - Buffer size: 64KB initial, 64MB max per line
//   - Memory usage: the whole file is kept in memory
//   - Time complexity: O(n) in file size
//
// # Error Handling
//
// Load wraps every failure with context ("open file: ...", "read file: ...").
// Missing files, directories, lines over the size cap and content that is not
// valid UTF-8 (ErrInvalidUTF8, with the 1-based line number) are all errors.
// The pager treats any of them as fatal since there is nothing to show.
package document
