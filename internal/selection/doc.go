package selection

// Package selection keeps the ordered set of chosen files together with the
// list the user sees and reorders. The two are allowed to drift apart while
// the user moves entries around and are brought back in line by Reconcile
// right before conversion.
