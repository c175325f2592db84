/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package versions contains the version of the operator
package versions

// Version is the current version of the operator, set at build time
var Version = "dev"
