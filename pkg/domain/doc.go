/*
Package domain contains the core puzzle models of the Tower of Hanoi solver.

It defines the rods, discs and moves of a three-peg puzzle together with the
mutable puzzle State. This package is kept pure and free of I/O; the only
code allowed to mutate a State lives in the runtime engine.

# Key Entities

  - Rod: one of the three fixed pegs (A, B, C).
  - Disc: a uniquely sized piece; larger discs never rest on smaller ones.
  - Move: a single disc relocation with a snapshot of the rods afterwards.
  - State: the rods plus the append-only move log of one puzzle.
*/
package domain
