// Package shim fills in the seven ECMAScript 5 array iteration methods on a
// host prototype that lacks them:
//
//	indexOf  lastIndexOf  every  filter  forEach  map  some
//
// Each method is installed only when the prototype has nothing under that
// name, so a native implementation is never replaced and installing twice
// changes nothing:
//
//	report, err := shim.Install(host.ArrayPrototype, shim.DefaultOptions())
//	// report.Installed → names that were missing
//	// report.Skipped   → names already present
//
// [InstallDefault] does the same for host.ArrayPrototype at most once per
// process. Importing package shim/auto for its side effect calls it at load
// time.
//
// # Semantics
//
// The methods delegate to package arr after the host-level guards: a null or
// undefined receiver and a non-callable callback are TypeErrors raised before
// any element is read. Receivers go through host.ToObject, so strings and
// array-like objects work as they do with Function.prototype.call.
// Callbacks are called with (element, index, object) and the optional second
// argument as their receiver; an error returned by a callback aborts the
// method and is returned unchanged.
package shim
