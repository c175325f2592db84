/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package hash computes a fingerprint of any Kubernetes object spec,
// used to detect changes between reconciliations
package hash

import (
	"fmt"
	"hash"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
	"k8s.io/apimachinery/pkg/util/rand"
)

// ComputeHash returns a hash value calculated from a given object.
// The hash will be safe to be used as part of an object name.
func ComputeHash(object interface{}) (string, error) {
	hasher := fnv.New32a()
	if err := deepHashObject(hasher, object); err != nil {
		return "", err
	}

	return rand.SafeEncodeString(fmt.Sprint(hasher.Sum32())), nil
}

// deepHashObject writes the specified object into the given hasher,
// following pointers to include the values they point to
func deepHashObject(hasher hash.Hash, objectToWrite interface{}) error {
	hasher.Reset()
	printer := spew.ConfigState{
		Indent:         " ",
		SortKeys:       true,
		DisableMethods: true,
		SpewKeys:       true,
	}
	_, err := printer.Fprintf(hasher, "%#v", objectToWrite)
	return err
}
