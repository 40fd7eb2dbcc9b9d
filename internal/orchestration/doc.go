// Package orchestration coordinates the execution of one or more convolution
// algorithms: it fans the runs out, times each one, collects the results,
// and validates their mutual consistency through the wrap identity before
// anything is presented to the user.
package orchestration
