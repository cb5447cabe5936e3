// Copyright 2023 Dash Manager Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"sigs.k8s.io/yaml"
)

// Record is one configuration document. Records declare which views they
// target; an empty target list means the record applies to every view.
type Record interface {
	GetViews() []string
}

type RecordCardinality int

const (
	GlobalSingleton RecordCardinality = iota
	OnePerView
	MultiplePerView
)

type RecordFactory func() Record

type recordTypeInfo struct {
	factory RecordFactory
	card    RecordCardinality
}

var recordTypes = make(map[string]recordTypeInfo)

type recordSet map[string][]Record

// Registry holds the full set of configuration records loaded for a board.
type Registry struct {
	records       recordSet
	views         map[string]recordSet
	globalRecords map[string]Record
	core          *CoreRecord
	originPath    string
}

// RegisterType makes a record type known to the loader.
func RegisterType(recordType string, card RecordCardinality, factory RecordFactory) {
	recordTypes[recordType] = recordTypeInfo{
		factory: factory,
		card:    card,
	}
}

// LoadRegistryFromDirectory reads every .yaml file under path into a registry.
func LoadRegistryFromDirectory(path string) (*Registry, error) {
	reg := &Registry{
		records:       make(recordSet),
		views:         make(map[string]recordSet),
		globalRecords: make(map[string]Record),
		originPath:    path,
	}

	err := filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read configuration file %s: %v", path, err)
		}

		if err := reg.processRecord(b); err != nil {
			return fmt.Errorf("unable to parse configuration file %s: %v", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err = reg.postProcessAfterLoad(); err != nil {
		return nil, err
	}

	return reg, nil
}

func (reg *Registry) processRecord(b []byte) error {
	var r RecordBase
	if err := yaml.Unmarshal(b, &r); err != nil {
		return err
	}

	ri, ok := recordTypes[r.Type]
	if !ok {
		return fmt.Errorf("unsupported configuration type '%s'", r.Type)
	}

	o := ri.factory()
	if err := yaml.Unmarshal(b, o); err != nil {
		return err
	}

	if r.Type == coreRecordType {
		reg.core = o.(*CoreRecord)
	}

	if ri.card == GlobalSingleton {
		if reg.globalRecords[r.Type] != nil {
			return fmt.Errorf("can't specify multiple configuration records of type '%s', it must be a global singleton", r.Type)
		}

		reg.globalRecords[r.Type] = o
	} else {
		reg.records[r.Type] = append(reg.records[r.Type], o)
	}

	return nil
}

func (reg *Registry) postProcessAfterLoad() error {
	var errs *multierror.Error

	if reg.core == nil {
		errs = multierror.Append(errs, errors.New("didn't find the required core configuration record"))
	}

	for recType, recs := range reg.records {
		card := recordTypes[recType].card

		for _, rec := range recs {
			for _, view := range rec.GetViews() {
				recSet := reg.views[view]
				if recSet == nil {
					recSet = make(recordSet)
					reg.views[view] = recSet
				}

				recSet[recType] = append(recSet[recType], rec)

				if card == OnePerView && len(recSet[recType]) > 1 {
					errs = multierror.Append(errs, fmt.Errorf("can't have multiple records of type %s targeting the view %s", recType, view))
				}
			}
		}
	}

	return errs.ErrorOrNil()
}

// Records returns the records of the given type that apply to the named view.
// Pass "*" to get the records for all the views.
func (reg *Registry) Records(recordType string, view string) []Record {
	if view == "*" {
		return reg.records[recordType]
	}

	var out []Record

	// untargeted records apply to every view
	for _, rec := range reg.records[recordType] {
		if len(rec.GetViews()) == 0 {
			out = append(out, rec)
		}
	}

	if recSet := reg.views[view]; recSet != nil {
		out = append(out, recSet[recordType]...)
	}

	return out
}

// SingleRecord returns the one record of the given type applying to the named
// view, preferring a record that targets the view explicitly.
func (reg *Registry) SingleRecord(recordType string, view string) (Record, bool) {
	if recSet := reg.views[view]; recSet != nil && len(recSet[recordType]) > 0 {
		return recSet[recordType][0], true
	}

	for _, rec := range reg.records[recordType] {
		if len(rec.GetViews()) == 0 {
			return rec, true
		}
	}

	return nil, false
}

func (reg *Registry) GlobalRecord(recordType string) (Record, bool) {
	result, ok := reg.globalRecords[recordType]
	return result, ok
}

func (reg *Registry) Core() *CoreRecord {
	return reg.core
}

func (reg *Registry) OriginPath() string {
	return reg.originPath
}
