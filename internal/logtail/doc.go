// Package logtail reads the tail of the diagnostic log for display in the TUI.
//
// # Reading
//
// Read keeps a ring buffer of maxLines strings while scanning the file once,
// so memory stays O(maxLines) however large the log grows. Lines come back
// oldest first. A missing file is not an error; the log is created lazily.
//
// # Parsing
//
// Each line is decoded as a zerolog JSON object. The time, level, component,
// message and error keys are lifted into Entry; every other key lands in
// Fields as text. Lines that are not JSON are kept verbatim in Entry.Raw so
// nothing written to the file is hidden.
//
// Example:
//
//	entries, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//	for _, e := range entries {
//		fmt.Println(e.String())
//	}
package logtail
