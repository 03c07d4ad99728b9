// Package errors provides coded, actionable diagnostics for defkit.
//
// Each diagnostic has a unique code (e.g., "D002") that maps to a short
// message, a longer explanation and a suggested fix. The CLI prints them
// with Format:
//
//	err := errors.New("D002").WithProperty("getElement")
//	fmt.Print(err.Format())
//	// ERROR D002: Missing render function
//	//
//	//   property: getElement
//	//
//	//   A component definition must provide getElement, or be a render
//	//   function itself.
//	//
//	//   Hint: Add getElement: func(my *defcomp.Instance) *vdom.VNode { ... }
package errors
