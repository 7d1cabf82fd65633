/*
Package window is the closest binding of a selector command line that is feasible.

A Window is an immutable request configuration: every setter returns a new value,
so a Window can be shared freely and refined per display call without aliasing.

	w := window.New("Pick one").
		Location(window.TopRight).
		Padding(10, 40).
		Lines(8).
		Format(window.FormatText)

	args := w.Args()                      // argument vector, in protocol order
	payload := window.Payload(options)    // newline-joined stdin payload
*/
package window
