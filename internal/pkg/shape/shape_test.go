// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/require"
)

type testStatus string

const (
	testStatusActive  testStatus = "ACTIVE"
	testStatusDeleted testStatus = "DELETED"
)

func (testStatus) Values() []testStatus {
	return []testStatus{testStatusActive, testStatusDeleted}
}

type testParameter struct {
	_ struct{} `type:"structure"`

	ParameterKey   *string `locationName:"ParameterKey" type:"string" required:"true"`
	ParameterValue *string `locationName:"ParameterValue" type:"string"`
}

type testInput struct {
	_ struct{} `type:"structure"`

	StackName          *string            `locationName:"StackName" min:"1" max:"12" pattern:"[a-zA-Z][-a-zA-Z0-9]*" type:"string" required:"true"`
	Parameters         []*testParameter   `locationName:"Parameters" type:"list"`
	ResourcesToSkip    []*string          `locationName:"ResourcesToSkip" max:"2" type:"list"`
	Timeout            *int64             `locationName:"Timeout" min:"1" max:"60" type:"integer"`
	Status             testStatus         `locationName:"Status" type:"string" enum:"testStatus"`
	Enabled            *bool              `locationName:"Enabled" type:"boolean"`
	CreationTime       *time.Time         `locationName:"CreationTime" type:"timestamp"`
	Rollback           *testParameter     `locationName:"Rollback" type:"structure"`
	Labels             map[string]*string `locationName:"Labels" type:"map"`
	ClientRequestToken *string            `locationName:"ClientRequestToken" min:"1" max:"128" pattern:"(" type:"string"`

	unexported string
}

func TestString(t *testing.T) {
	created := time.Date(2022, time.March, 4, 10, 30, 0, 0, time.UTC)
	testCases := map[string]struct {
		in     interface{}
		wanted string
	}{
		"nil": {
			in:     nil,
			wanted: "null",
		},
		"nil pointer to shape": {
			in:     (*testInput)(nil),
			wanted: "null",
		},
		"empty shape": {
			in:     &testInput{},
			wanted: "{}",
		},
		"omits null members without a trailing separator": {
			in: &testInput{
				StackName:          aws.String("my-stack"),
				ResourcesToSkip:    aws.StringSlice([]string{"ResA", "ResB"}),
				ClientRequestToken: aws.String("tok-1"),
			},
			wanted: "{StackName: my-stack,ResourcesToSkip: [ResA, ResB],ClientRequestToken: tok-1}",
		},
		"set but empty list is rendered": {
			in: &testInput{
				ResourcesToSkip: []*string{},
			},
			wanted: "{ResourcesToSkip: []}",
		},
		"renders every kind of member": {
			in: testInput{
				Parameters: []*testParameter{
					{ParameterKey: aws.String("Env"), ParameterValue: aws.String("test")},
				},
				Timeout:      aws.Int64(30),
				Status:       testStatusActive,
				Enabled:      aws.Bool(false),
				CreationTime: &created,
				Rollback:     &testParameter{},
				Labels: map[string]*string{
					"b": aws.String("2"),
					"a": aws.String("1"),
				},
			},
			wanted: "{Parameters: [{ParameterKey: Env,ParameterValue: test}],Timeout: 30,Status: ACTIVE,Enabled: false,CreationTime: 2022-03-04T10:30:00Z,Rollback: {},Labels: {a=1, b=2}}",
		},
		"nil element in a list": {
			in: &testInput{
				ResourcesToSkip: []*string{aws.String("a"), nil},
			},
			wanted: "{ResourcesToSkip: [a, null]}",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, String(tc.in))
		})
	}
}

func TestEqual(t *testing.T) {
	created := time.Date(2022, time.March, 4, 10, 30, 0, 0, time.UTC)
	testCases := map[string]struct {
		a, b   interface{}
		wanted bool
	}{
		"both nil": {
			wanted: true,
		},
		"one side nil": {
			a:      &testInput{},
			wanted: false,
		},
		"different types": {
			a:      &testInput{},
			b:      &testParameter{},
			wanted: false,
		},
		"empty shapes": {
			a:      &testInput{},
			b:      &testInput{},
			wanted: true,
		},
		"null on one side only": {
			a:      &testInput{StackName: aws.String("a")},
			b:      &testInput{},
			wanted: false,
		},
		"null on the other side only": {
			a:      &testInput{},
			b:      &testInput{StackName: aws.String("a")},
			wanted: false,
		},
		"nil list differs from empty list": {
			a:      &testInput{ResourcesToSkip: []*string{}},
			b:      &testInput{},
			wanted: false,
		},
		"same values in different pointers": {
			a: &testInput{
				StackName:       aws.String("my-stack"),
				ResourcesToSkip: aws.StringSlice([]string{"ResA", "ResB"}),
				Parameters:      []*testParameter{{ParameterKey: aws.String("k")}},
				Labels:          map[string]*string{"a": aws.String("1")},
				Status:          testStatusActive,
			},
			b: &testInput{
				StackName:       aws.String("my-stack"),
				ResourcesToSkip: aws.StringSlice([]string{"ResA", "ResB"}),
				Parameters:      []*testParameter{{ParameterKey: aws.String("k")}},
				Labels:          map[string]*string{"a": aws.String("1")},
				Status:          testStatusActive,
			},
			wanted: true,
		},
		"list order matters": {
			a:      &testInput{ResourcesToSkip: aws.StringSlice([]string{"a", "b"})},
			b:      &testInput{ResourcesToSkip: aws.StringSlice([]string{"b", "a"})},
			wanted: false,
		},
		"nested shapes differ": {
			a:      &testInput{Rollback: &testParameter{ParameterKey: aws.String("a")}},
			b:      &testInput{Rollback: &testParameter{ParameterKey: aws.String("b")}},
			wanted: false,
		},
		"same instant in different locations": {
			a:      &testInput{CreationTime: aws.Time(created)},
			b:      &testInput{CreationTime: aws.Time(created.In(time.FixedZone("UTC+2", 2*60*60)))},
			wanted: true,
		},
		"unexported fields are ignored": {
			a:      &testInput{unexported: "a"},
			b:      &testInput{unexported: "b"},
			wanted: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, Equal(tc.a, tc.b))
			require.Equal(t, tc.wanted, Equal(tc.b, tc.a))
		})
	}
}

func TestHash(t *testing.T) {
	t.Run("empty shape hashes every member as zero", func(t *testing.T) {
		// 1 folded ten times with a zero contribution.
		var wanted int32 = 1
		for i := 0; i < 10; i++ {
			wanted *= 31
		}
		require.Equal(t, wanted, Hash(&testInput{}))
	})
	t.Run("nil hashes to zero", func(t *testing.T) {
		require.Equal(t, int32(0), Hash(nil))
		require.Equal(t, int32(0), Hash((*testInput)(nil)))
	})
	t.Run("strings hash like their UTF-16 code units", func(t *testing.T) {
		require.Equal(t, int32(0), hashString(""))
		require.Equal(t, int32(96354), hashString("abc"))
		require.Equal(t, int32(69609650), hashString("Hello"))
		// U+1F600 is the surrogate pair D83D DE00.
		require.Equal(t, int32(0xD83D*31+0xDE00), hashString("\U0001F600"))
	})
	t.Run("scalars", func(t *testing.T) {
		require.Equal(t, int32(1231), Hash(aws.Bool(true)))
		require.Equal(t, int32(1237), Hash(aws.Bool(false)))
		require.Equal(t, int32(42), Hash(aws.Int64(42)))
		require.Equal(t, int32(1), Hash(aws.Int64(1<<32)))
		require.Equal(t, int32(0), Hash(aws.Int64(-1)))
	})
	t.Run("single member", func(t *testing.T) {
		p := &testParameter{ParameterKey: aws.String("abc")}
		require.Equal(t, int32((31*1+96354)*31+0), Hash(p))
	})
	t.Run("equal shapes hash the same", func(t *testing.T) {
		created := time.Date(2022, time.March, 4, 10, 30, 0, 0, time.UTC)
		a := &testInput{
			StackName:       aws.String("my-stack"),
			ResourcesToSkip: aws.StringSlice([]string{"ResA", "ResB"}),
			Labels:          map[string]*string{"a": aws.String("1"), "b": aws.String("2")},
			CreationTime:    aws.Time(created),
			Status:          testStatusDeleted,
		}
		b := &testInput{
			StackName:       aws.String("my-stack"),
			ResourcesToSkip: aws.StringSlice([]string{"ResA", "ResB"}),
			Labels:          map[string]*string{"b": aws.String("2"), "a": aws.String("1")},
			CreationTime:    aws.Time(created.Local()),
			Status:          testStatusDeleted,
		}
		require.True(t, Equal(a, b))
		require.Equal(t, Hash(a), Hash(b))
	})
	t.Run("empty list differs from nil list", func(t *testing.T) {
		require.NotEqual(t, Hash(&testInput{}), Hash(&testInput{ResourcesToSkip: []*string{}}))
	})
}

func TestDiff(t *testing.T) {
	testCases := map[string]struct {
		a, b   interface{}
		wanted []Difference
	}{
		"equal shapes": {
			a: &testInput{StackName: aws.String("a")},
			b: &testInput{StackName: aws.String("a")},
		},
		"different types": {
			a:      &testInput{},
			b:      &testParameter{},
			wanted: []Difference{{A: &testInput{}, B: &testParameter{}}},
		},
		"scalar and null members": {
			a: &testInput{StackName: aws.String("a"), Status: testStatusActive},
			b: &testInput{StackName: aws.String("b"), Timeout: aws.Int64(5)},
			wanted: []Difference{
				{Path: "StackName", A: "a", B: "b"},
				{Path: "Timeout", A: nil, B: int64(5)},
				{Path: "Status", A: testStatusActive, B: nil},
			},
		},
		"nested members": {
			a: &testInput{
				Parameters: []*testParameter{{ParameterKey: aws.String("k"), ParameterValue: aws.String("1")}},
				Rollback:   &testParameter{ParameterKey: aws.String("a")},
			},
			b: &testInput{
				Parameters: []*testParameter{{ParameterKey: aws.String("k"), ParameterValue: aws.String("2")}},
				Rollback:   &testParameter{ParameterKey: aws.String("b")},
			},
			wanted: []Difference{
				{Path: "Parameters[0].ParameterValue", A: "1", B: "2"},
				{Path: "Rollback.ParameterKey", A: "a", B: "b"},
			},
		},
		"lists of different length": {
			a: &testInput{ResourcesToSkip: aws.StringSlice([]string{"a"})},
			b: &testInput{ResourcesToSkip: aws.StringSlice([]string{"a", "b"})},
			wanted: []Difference{
				{
					Path: "ResourcesToSkip",
					A:    aws.StringSlice([]string{"a"}),
					B:    aws.StringSlice([]string{"a", "b"}),
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, Diff(tc.a, tc.b))
		})
	}
}

func TestDifference_String(t *testing.T) {
	d := Difference{Path: "Timeout", A: nil, B: int64(5)}
	require.Equal(t, "Timeout: null -> 5", d.String())
}

func TestValidate(t *testing.T) {
	testCases := map[string]struct {
		in           interface{}
		wantedFields []string
		wantedCodes  []string
	}{
		"nil is valid": {
			in: nil,
		},
		"valid shape": {
			in: &testInput{
				StackName:          aws.String("my-stack"),
				Timeout:            aws.Int64(60),
				ClientRequestToken: aws.String("anything goes"),
			},
		},
		"missing required member": {
			in:           &testInput{},
			wantedFields: []string{"testInput.StackName"},
			wantedCodes:  []string{request.ParamRequiredErrCode},
		},
		"too short and out of range": {
			in: &testInput{
				StackName: aws.String(""),
				Timeout:   aws.Int64(0),
			},
			wantedFields: []string{"testInput.StackName", "testInput.StackName", "testInput.Timeout"},
			wantedCodes:  []string{request.ParamMinLenErrCode, ParamPatternErrCode, request.ParamMinValueErrCode},
		},
		"too long and above range": {
			in: &testInput{
				StackName:       aws.String("a-very-long-stack"),
				ResourcesToSkip: aws.StringSlice([]string{"a", "b", "c"}),
				Timeout:         aws.Int64(61),
			},
			wantedFields: []string{"testInput.StackName", "testInput.ResourcesToSkip", "testInput.Timeout"},
			wantedCodes:  []string{ParamMaxLenErrCode, ParamMaxLenErrCode, ParamMaxValueErrCode},
		},
		"pattern must match the whole value": {
			in: &testInput{
				StackName: aws.String("1stack"),
			},
			wantedFields: []string{"testInput.StackName"},
			wantedCodes:  []string{ParamPatternErrCode},
		},
		"length counts runes": {
			in: &testInput{
				StackName: aws.String("ééééééééééé"),
			},
			wantedFields: []string{"testInput.StackName"},
			wantedCodes:  []string{ParamPatternErrCode},
		},
		"nested shapes": {
			in: &testInput{
				StackName:  aws.String("my-stack"),
				Parameters: []*testParameter{{ParameterKey: aws.String("k")}, {}},
				Rollback:   &testParameter{},
			},
			wantedFields: []string{"testInput.Parameters[1].ParameterKey", "testInput.Rollback.ParameterKey"},
			wantedCodes:  []string{request.ParamRequiredErrCode, request.ParamRequiredErrCode},
		},
		"enum membership is not validated": {
			in: &testInput{
				StackName: aws.String("my-stack"),
				Status:    testStatus("ARCHIVED"),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.in)
			if tc.wantedFields == nil {
				require.NoError(t, err)
				return
			}
			var invalidParams request.ErrInvalidParams
			require.True(t, errors.As(err, &invalidParams))
			var fields, codes []string
			for _, e := range invalidParams.OrigErrs() {
				var param request.ErrInvalidParam
				require.True(t, errors.As(e, &param))
				fields = append(fields, param.Field())
				codes = append(codes, param.Code())
			}
			require.Equal(t, tc.wantedFields, fields)
			require.Equal(t, tc.wantedCodes, codes)
		})
	}
}

func TestValidate_ErrorMessage(t *testing.T) {
	err := Validate(&testInput{StackName: aws.String("a-very-long-stack")})

	var aerr awserr.Error
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, request.InvalidParameterErrCode, aerr.Code())
	require.Contains(t, err.Error(), "maximum field size of 12, testInput.StackName.")
}

func TestRegistry(t *testing.T) {
	if _, err := New("testParameter"); err != nil {
		Register("testParameter", func() interface{} { return &testParameter{} })
	}

	t.Run("returns a new zero value", func(t *testing.T) {
		v, err := New("testParameter")
		require.NoError(t, err)
		require.Equal(t, &testParameter{}, v)

		other, err := New("testParameter")
		require.NoError(t, err)
		require.NotSame(t, v, other)
	})
	t.Run("errors on an unknown name", func(t *testing.T) {
		_, err := New("Nope")
		require.EqualError(t, err, "shape Nope is not registered")
	})
	t.Run("lists names", func(t *testing.T) {
		require.Contains(t, Names(), "testParameter")
	})
	t.Run("panics when registered twice", func(t *testing.T) {
		require.Panics(t, func() {
			if _, err := New("testParameter"); err != nil {
		Register("testParameter", func() interface{} { return &testParameter{} })
	}
		})
	})
}

func TestDescribe(t *testing.T) {
	t.Run("errors on a non-shape", func(t *testing.T) {
		_, err := Describe(aws.String("hi"))
		require.EqualError(t, err, "value of type *string is not a shape")
	})
	t.Run("describes members and constraints", func(t *testing.T) {
		s, err := Describe(&testInput{})
		require.NoError(t, err)
		require.Equal(t, "testInput", s.Name)
		require.Len(t, s.Fields, 10)

		min, max := int64(1), int64(12)
		require.Equal(t, FieldSchema{
			Name:     "StackName",
			WireName: "StackName",
			Kind:     KindString,
			Required: true,
			Min:      &min,
			Max:      &max,
			Pattern:  "[a-zA-Z][-a-zA-Z0-9]*",
		}, s.Fields[0])
		require.Equal(t, FieldSchema{
			Name:     "Parameters",
			WireName: "Parameters",
			Kind:     KindList,
			Element:  "testParameter",
			Shape:    "testParameter",
		}, s.Fields[1])
		require.Equal(t, KindList, s.Fields[2].Kind)
		require.Equal(t, KindString, s.Fields[2].Element)
		require.Equal(t, KindInteger, s.Fields[3].Kind)
		require.Equal(t, FieldSchema{
			Name:     "Status",
			WireName: "Status",
			Kind:     KindEnum,
			Enum:     []string{"ACTIVE", "DELETED"},
		}, s.Fields[4])
		require.Equal(t, KindBoolean, s.Fields[5].Kind)
		require.Equal(t, KindTimestamp, s.Fields[6].Kind)
		require.Equal(t, KindStructure, s.Fields[7].Kind)
		require.Equal(t, "testParameter", s.Fields[7].Shape)
		require.Equal(t, KindMap, s.Fields[8].Kind)
	})
}

func TestSlices(t *testing.T) {
	t.Run("Copy keeps nil and detaches the backing array", func(t *testing.T) {
		require.Nil(t, Copy([]int(nil)))

		in := []int{1, 2}
		out := Copy(in)
		in[0] = 3
		require.Equal(t, []int{1, 2}, out)
	})
	t.Run("Append allocates on first use", func(t *testing.T) {
		var list []int
		list = Append(list)
		require.NotNil(t, list)
		require.Empty(t, list)

		list = Append(list, 1)
		list = Append(list, 2, 3)
		require.Equal(t, []int{1, 2, 3}, list)
	})
	t.Run("CopyStrings copies the strings", func(t *testing.T) {
		require.Nil(t, CopyStrings(nil))

		in := aws.StringSlice([]string{"a", "b"})
		out := CopyStrings(in)
		*in[0] = "z"
		require.Equal(t, []string{"a", "b"}, aws.StringValueSlice(out))
	})
	t.Run("AppendStrings accumulates", func(t *testing.T) {
		list := AppendStrings(nil, "a")
		list = AppendStrings(list, "b")
		require.Equal(t, []string{"a", "b"}, aws.StringValueSlice(list))
	})
	t.Run("CopyMap detaches the map", func(t *testing.T) {
		require.Nil(t, CopyMap(map[string]int(nil)))

		in := map[string]int{"a": 1}
		out := CopyMap(in)
		in["a"] = 2
		require.Equal(t, map[string]int{"a": 1}, out)
	})
}
