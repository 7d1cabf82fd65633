/*
Package domain contains the core types shared by every rofiflow component.

It defines the vocabulary of a selection round-trip, independent of how the
external selector is spawned or how a host persists its own data. This package is
kept pure and free of I/O, following the Hexagonal Architecture used across the module.

# Key Entities

  - Outcome: The sealed sum type every display operation terminates in
    (Selection, Action, Blank, Cancel, Exit, Success, Error).
  - Item: The capability set (display form + duplication) required from list entries.
  - ItemCallback / ActionCallback / BlankCallback / SearchCallback: Host operations
    with explicit duplication, invoked by the classification layer.
  - Answer: The raw reply read back from the selector process.
  - InvocationError / CallbackError: The error taxonomy.
  - LifecycleHooks: Observability callbacks for invocations and outcomes.
*/
package domain
