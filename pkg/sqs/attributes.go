package sqs

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func stringAttributes(attributes map[string]string) map[string]types.MessageAttributeValue {
	if len(attributes) == 0 {
		return nil
	}
	res := make(map[string]types.MessageAttributeValue, len(attributes))
	for k, v := range attributes {
		res[k] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(v),
		}
	}
	return res
}

// MessageAttribute returns a string attribute of a received message
func MessageAttribute(msg types.Message, name string) string {
	if v, ok := msg.MessageAttributes[name]; ok {
		return aws.ToString(v.StringValue)
	}
	return ""
}
