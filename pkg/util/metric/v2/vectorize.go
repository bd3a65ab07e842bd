// Copyright 2023 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v2

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VectorizeEvalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "vectorize",
			Name:      "eval_total",
			Help:      "Total number of vectorized predicate evaluations by path.",
		}, []string{"path"})
	VectorizeGenericEvalCounter     = VectorizeEvalCounter.WithLabelValues("generic")
	VectorizeSpecializedEvalCounter = VectorizeEvalCounter.WithLabelValues("specialized")
	VectorizeStridedEvalCounter     = VectorizeEvalCounter.WithLabelValues("strided")
	VectorizeParallelEvalCounter    = VectorizeEvalCounter.WithLabelValues("parallel")

	VectorizeRowsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "vectorize",
			Name:      "rows_total",
			Help:      "Total number of elements scanned by vectorized predicates by path.",
		}, []string{"path"})
	VectorizeGenericRowsCounter     = VectorizeRowsCounter.WithLabelValues("generic")
	VectorizeSpecializedRowsCounter = VectorizeRowsCounter.WithLabelValues("specialized")
	VectorizeStridedRowsCounter     = VectorizeRowsCounter.WithLabelValues("strided")

	VectorizePredicateCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "vectorize",
			Name:      "predicate_total",
			Help:      "Total number of vectorized evaluations by predicate.",
		}, []string{"predicate"})
	VectorizeEqualsCounter           = VectorizePredicateCounter.WithLabelValues("eq")
	VectorizeLessThanCounter         = VectorizePredicateCounter.WithLabelValues("lt")
	VectorizeLessThanOrEqualsCounter = VectorizePredicateCounter.WithLabelValues("le")

	VectorizeContractViolationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "vectorize",
			Name:      "contract_violation_total",
			Help:      "Total number of vectorized calls rejected by argument validation, by error code.",
		}, []string{"code"})
)
