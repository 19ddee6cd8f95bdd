package gtfs

import (
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

const feedMessageName = "transit_realtime.FeedMessage"

var (
	feedMessageMutex sync.Mutex
	feedMessage      protoreflect.MessageType
)

// feedMessageType resolves the transit_realtime.FeedMessage definition from
// the process-wide protobuf registry. The result is cached on success only,
// so a failed lookup stays retryable for later callers.
func feedMessageType() (protoreflect.MessageType, error) {
	feedMessageMutex.Lock()
	defer feedMessageMutex.Unlock()

	if feedMessage != nil {
		return feedMessage, nil
	}

	messageType, err := protoregistry.GlobalTypes.FindMessageByName(protoreflect.FullName(feedMessageName))
	if err != nil {
		return nil, &SchemaLoadError{MessageName: feedMessageName, Err: err}
	}

	feedMessage = messageType

	return messageType, nil
}
