/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package crds generates the CustomResourceDefinitions of the
// operator and writes them out as the multi-document YAML stream
// shipped inside the Helm chart
package crds

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
)

// DefaultPath is where the CRD stream is written when CRD generation
// is requested
const DefaultPath = "charts/postgres-topology-operator/templates/crds.yaml"

type definition struct {
	kind           string
	plural         string
	hasStatus      bool
	printerColumns []apiextensionsv1.CustomResourceColumnDefinition
}

var definitions = []definition{
	{
		kind:      apiv1alpha1.PostgresSchemaKind,
		plural:    "postgresschemas",
		hasStatus: true,
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Schema", Type: "string", JSONPath: ".spec.schema", Description: "Name of the schema"},
		},
	},
	{
		kind:   apiv1alpha1.PostgresAdminConnectionKind,
		plural: "postgresadminconnections",
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Host", Type: "string", JSONPath: ".spec.host", Description: "Postgres host"},
			{Name: "Database", Type: "string", JSONPath: ".spec.database", Description: "Name of the database"},
			{Name: "Username", Type: "string", JSONPath: ".spec.username", Description: "Name of the admin user"},
		},
	},
	{
		kind:      apiv1alpha1.PostgresRoleKind,
		plural:    "postgresroles",
		hasStatus: true,
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Role", Type: "string", JSONPath: ".spec.role", Description: "Name of the role"},
		},
	},
	{
		kind:      apiv1alpha1.PgBouncerKind,
		plural:    "pgbouncers",
		hasStatus: true,
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Service", Type: "string", JSONPath: ".spec.service.name", Description: "Name of the service"},
		},
	},
	{
		kind:      apiv1alpha1.PgBouncerUserKind,
		plural:    "pgbouncerusers",
		hasStatus: true,
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Username", Type: "string", JSONPath: ".spec.username", Description: "Name of the user"},
		},
	},
	{
		kind:      apiv1alpha1.PgBouncerDatabaseKind,
		plural:    "pgbouncerdatabases",
		hasStatus: true,
		printerColumns: []apiextensionsv1.CustomResourceColumnDefinition{
			{Name: "Database", Type: "string", JSONPath: ".spec.exposedDatabaseName", Description: "Name of the database"},
		},
	},
}

// Definitions builds the CustomResourceDefinitions of the six managed
// kinds, in the order they are written out
func Definitions() []apiextensionsv1.CustomResourceDefinition {
	result := make([]apiextensionsv1.CustomResourceDefinition, 0, len(definitions))
	for _, def := range definitions {
		result = append(result, buildDefinition(def))
	}

	return result
}

func buildDefinition(def definition) apiextensionsv1.CustomResourceDefinition {
	properties := map[string]apiextensionsv1.JSONSchemaProps{
		"spec": {
			Type:                   "object",
			XPreserveUnknownFields: ptr.To(true),
		},
	}

	var subresources *apiextensionsv1.CustomResourceSubresources
	if def.hasStatus {
		properties["status"] = apiextensionsv1.JSONSchemaProps{
			Type:                   "object",
			XPreserveUnknownFields: ptr.To(true),
		}
		subresources = &apiextensionsv1.CustomResourceSubresources{
			Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
		}
	}

	return apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			Kind:       "CustomResourceDefinition",
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: fmt.Sprintf("%v.%v", def.plural, apiv1alpha1.GroupVersion.Group),
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: apiv1alpha1.GroupVersion.Group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Kind:     def.kind,
				ListKind: def.kind + "List",
				Plural:   def.plural,
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    apiv1alpha1.GroupVersion.Version,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
							Type:       "object",
							Properties: properties,
							Required:   []string{"spec"},
						},
					},
					Subresources:             subresources,
					AdditionalPrinterColumns: def.printerColumns,
				},
			},
		},
	}
}

// Render marshals the definitions into one YAML stream, documents
// separated by "\n---\n"
func Render() ([]byte, error) {
	var buffer bytes.Buffer

	for _, crd := range Definitions() {
		document, err := yaml.Marshal(crd)
		if err != nil {
			return nil, fmt.Errorf("while marshalling CRD %v: %w", crd.Name, err)
		}

		buffer.Write(document)
		buffer.WriteString("\n---\n")
	}

	return buffer.Bytes(), nil
}

// WriteFile renders the CRD stream into the passed file, creating the
// directories leading to it
func WriteFile(path string) error {
	content, err := Render()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("while creating directory for %v: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("while writing %v: %w", path, err)
	}

	return nil
}
