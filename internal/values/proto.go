package values

import (
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FromProto converts a protoreflect dynamic message into a Record so that
// patterns can match protobuf payloads structurally. The record's type tag
// is the message name; repeated fields become Lists, nested messages are
// converted recursively.
func FromProto(msg *dynamic.Message) Value {
	fields := make(map[string]Value)
	for _, fd := range msg.GetMessageDescriptor().GetFields() {
		fields[fd.GetName()] = fromProtoField(msg.GetField(fd), fd)
	}
	r := NewRecord(msg.GetMessageDescriptor().GetName(), fields)
	r.source = msg
	return r
}

func fromProtoField(val any, fd *desc.FieldDescriptor) Value {
	if val == nil {
		return protoFieldDefault(fd)
	}

	if fd.IsRepeated() {
		// protoreflect hands repeated fields back as []interface{}.
		slice, ok := val.([]any)
		if !ok {
			return NewList(nil)
		}
		elements := make([]Value, len(slice))
		for i, item := range slice {
			elements[i] = fromProtoScalar(item)
		}
		return NewList(elements)
	}

	return fromProtoScalar(val)
}

func fromProtoScalar(val any) Value {
	switch v := val.(type) {
	case int32:
		return &Integer{Value: int64(v)}
	case int64:
		return &Integer{Value: v}
	case uint32:
		return &Integer{Value: int64(v)}
	case uint64:
		return &Integer{Value: int64(v)}
	case float32:
		return &Float{Value: float64(v)}
	case float64:
		return &Float{Value: v}
	case bool:
		if v {
			return TRUE
		}
		return FALSE
	case string:
		return &String{Value: v}
	case []byte:
		elements := make([]Value, len(v))
		for i, b := range v {
			elements[i] = &Integer{Value: int64(b)}
		}
		return NewList(elements)
	case *dynamic.Message:
		return FromProto(v)
	case int: // enums often surface as int
		return &Integer{Value: int64(v)}
	}
	return NIL
}

func protoFieldDefault(fd *desc.FieldDescriptor) Value {
	if fd.IsRepeated() {
		return NewList(nil)
	}
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return &String{Value: ""}
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		return NIL
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return &Float{Value: 0}
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return FALSE
	default:
		return &Integer{Value: 0}
	}
}
