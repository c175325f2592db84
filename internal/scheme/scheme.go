/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package scheme contains the runtime scheme used by the operator and
// its tests
package scheme

import (
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
)

// BuildWithAllKnownScheme creates a new scheme with all the types the
// operator works with
func BuildWithAllKnownScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()

	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(apiv1alpha1.AddToScheme(scheme))

	return scheme
}
