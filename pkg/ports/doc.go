/*
Package ports defines the driven ports (interfaces) of rofiflow.

These interfaces decouple the classification components from the process that renders
the menu, so the same components run against rofi, a compatible chooser, or a scripted
in-memory selector in tests.

# Key Interfaces

  - Selector: Performs one synchronous selector round-trip (the Process Invoker).
*/
package ports
