// Package vcs runs the external git binary on behalf of the scaffolder.
//
// A Context is bound to one working directory and is meant to be created
// fresh for each call site rather than held as shared state:
//
//	parent := vcs.NewContext(filepath.Dir(dest))
//	err := parent.Clone(url, dest, vcs.CloneOptions{Depth: 1, Branch: "1.19"})
//
//	repo := vcs.NewContext(dest)
//	err = repo.Init()
//
// Failures are reported as *Error values whose Kind separates "git is not
// installed" from "git ran and failed".
package vcs
