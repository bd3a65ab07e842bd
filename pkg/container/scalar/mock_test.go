// Copyright 2021 Matrix Origin
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

package scalar_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/motype/pkg/common/moerr"
	"github.com/matrixorigin/motype/pkg/container/scalar"
	"github.com/matrixorigin/motype/pkg/container/scalar/mock_scalar"
	"github.com/matrixorigin/motype/pkg/container/types"
)

func TestDerivedComparatorsUsePrimitives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mock_scalar.NewMockValue(ctrl)
	b := mock_scalar.NewMockValue(ctrl)

	a.EXPECT().Equals(b).Return(false, nil).Times(1)
	ne, err := scalar.NotEquals(a, b)
	require.NoError(t, err)
	require.True(t, ne)

	// a single Compare answers every relation
	a.EXPECT().Equals(b).Return(false, nil).Times(1)
	a.EXPECT().LessThan(b).Return(false, nil).Times(1)
	gt, err := scalar.GreaterThan(a, b)
	require.NoError(t, err)
	require.True(t, gt)

	a.EXPECT().LessThan(b).Return(true, nil).Times(1)
	ge, err := scalar.GreaterThanOrEquals(a, b)
	require.NoError(t, err)
	require.False(t, ge)

	mismatch := moerr.NewTypeMismatchNoCtx("A", "B")
	a.EXPECT().Equals(b).Return(false, mismatch).Times(1)
	_, err = scalar.LessThanOrEquals(a, b)
	require.Equal(t, mismatch, err)
}

func TestGenericVectorizedEqualsUsesCapabilities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock_scalar.NewMockValue(ctrl)
	lit := mock_scalar.NewMockValue(ctrl)
	elem := mock_scalar.NewMockValue(ctrl)

	vec := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	literal := []byte{5, 6, 7, 8}

	v.EXPECT().EncodedWidth().Return(4).AnyTimes()
	gomock.InOrder(
		v.EXPECT().NewInstanceOfSameType().Return(lit),
		v.EXPECT().NewInstanceOfSameType().Return(elem),
	)
	lit.EXPECT().Decode(literal).Return(nil)
	gomock.InOrder(
		elem.EXPECT().Decode(vec[0:4]).Return(nil),
		elem.EXPECT().Equals(lit).Return(false, nil),
		elem.EXPECT().Decode(vec[4:8]).Return(nil),
		elem.EXPECT().Equals(lit).Return(true, nil),
	)

	rs, err := scalar.VectorizedEquals(v, 4, vec, 2, literal, nil)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, rs)
}

func TestVectorizedEqualsRejectsBeforeDecoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock_scalar.NewMockValue(ctrl)
	v.EXPECT().EncodedWidth().Return(0).AnyTimes()
	v.EXPECT().TypeID().Return(types.T_varchar).AnyTimes()

	_, err := scalar.VectorizedEquals(v, 0, nil, 0, nil, nil)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnsupportedOperation))
}

func TestGenericVectorizedLessThanOrEqualsUsesPrimitives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock_scalar.NewMockValue(ctrl)
	lit := mock_scalar.NewMockValue(ctrl)
	elem := mock_scalar.NewMockValue(ctrl)

	vec := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	literal := []byte{5, 6, 7, 8}

	v.EXPECT().EncodedWidth().Return(4).AnyTimes()
	gomock.InOrder(
		v.EXPECT().NewInstanceOfSameType().Return(lit),
		v.EXPECT().NewInstanceOfSameType().Return(elem),
	)
	lit.EXPECT().Decode(literal).Return(nil)
	// a type without OrderedComparator answers <= from Equals and LessThan
	gomock.InOrder(
		elem.EXPECT().Decode(vec[0:4]).Return(nil),
		elem.EXPECT().Equals(lit).Return(false, nil),
		elem.EXPECT().LessThan(lit).Return(true, nil),
		elem.EXPECT().Decode(vec[4:8]).Return(nil),
		elem.EXPECT().Equals(lit).Return(true, nil),
		elem.EXPECT().LessThan(lit).Return(false, nil),
		elem.EXPECT().Decode(vec[8:12]).Return(nil),
		elem.EXPECT().Equals(lit).Return(false, nil),
		elem.EXPECT().LessThan(lit).Return(false, nil),
	)

	rs, err := scalar.VectorizedLessThanOrEquals(v, 4, vec, 3, literal, nil)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, rs)
}

func TestRegisterRejectsWrongWidth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock_scalar.NewMockValue(ctrl)
	v.EXPECT().TypeID().Return(types.T_uuid).AnyTimes()
	v.EXPECT().EncodedWidth().Return(8).AnyTimes()

	require.PanicsWithValue(t, "scalar: T_uuid encodes 8 bytes, want 16", func() {
		scalar.Register(types.T_uuid, func() scalar.Value { return v })
	})
}
