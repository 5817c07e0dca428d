// Package universe runs the simulation loop over a set of bodies.
//
//   - [Universe] owns the bodies, the uniform fields, and the registered
//     solvers for a fixed number of spatial dimensions.
//   - [Solver] is the collision-resolution strategy; solvers run in
//     registration order, each seeing the step's full collision list.
//   - [ImpulseSolver] is the default strategy, registered on every new
//     universe: restitution-scaled impulse along the contact normal plus
//     positional separation.
//
// # Stepping
//
// One call to [Universe.Step] performs four phases. Net forces are
// accumulated for every body from the pre-step snapshot: pairwise
// gravitation and Coulomb terms plus the uniform gravity, electric and
// magnetic fields. Every body then integrates its own state. Bounding boxes
// are rebuilt from the new positions and run through the broad and narrow
// phases. Finally each registered solver sees the confirmed collisions.
//
// Adding bodies, changing fields, and applying forces are only safe between
// steps; Step itself may fan work out to several goroutines, controlled by
// [Universe.SetWorkers].
package universe
