package gtfs

import (
	"fmt"
	"time"

	gtfsrt "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// VehiclePosition is a single decoded vehicle record. Latitude and longitude
// are always present; records without a position sub-message are never
// emitted.
type VehiclePosition struct {
	VehicleID string `json:"vehicleId" groups:"basic"`
	TripID    string `json:"tripId,omitempty" groups:"basic"`
	RouteID   string `json:"routeId,omitempty" groups:"basic"`

	Latitude  float64 `json:"latitude" groups:"basic"`
	Longitude float64 `json:"longitude" groups:"basic"`
	Bearing   float64 `json:"bearing,omitempty" groups:"basic"`
	Speed     float64 `json:"speed,omitempty" groups:"basic"`

	Timestamp int64 `json:"timestamp" groups:"basic"`

	CurrentStopSequence uint32 `json:"currentStopSequence,omitempty" groups:"basic"`
	CurrentStatus       string `json:"currentStatus,omitempty" groups:"basic"`
}

type TripUpdate struct {
	TripID               string           `json:"tripId" groups:"basic"`
	RouteID              string           `json:"routeId,omitempty" groups:"basic"`
	DirectionID          *uint32          `json:"directionId,omitempty" groups:"basic"`
	ScheduleRelationship string           `json:"scheduleRelationship,omitempty" groups:"basic"`
	StopTimeUpdates      []StopTimeUpdate `json:"stopTimeUpdates" groups:"basic"`
}

type StopTimeUpdate struct {
	StopSequence         uint32         `json:"stopSequence,omitempty" groups:"basic"`
	StopID               string         `json:"stopId,omitempty" groups:"basic"`
	Arrival              *StopTimeEvent `json:"arrival,omitempty" groups:"basic"`
	Departure            *StopTimeEvent `json:"departure,omitempty" groups:"basic"`
	ScheduleRelationship string         `json:"scheduleRelationship,omitempty" groups:"basic"`
}

type StopTimeEvent struct {
	Delay       int   `json:"delay,omitempty" groups:"basic"`
	Time        int64 `json:"time,omitempty" groups:"basic"`
	Uncertainty int   `json:"uncertainty,omitempty" groups:"basic"`
}

type Alert struct {
	ActivePeriods    []AlertActivePeriod   `json:"activePeriods"`
	InformedEntities []AlertInformedEntity `json:"informedEntities"`
	Cause            string                `json:"cause,omitempty"`
	Effect           string                `json:"effect,omitempty"`
	URL              []Translation         `json:"url,omitempty"`
	HeaderText       []Translation         `json:"headerText,omitempty"`
	DescriptionText  []Translation         `json:"descriptionText,omitempty"`
}

type AlertActivePeriod struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

type AlertInformedEntity struct {
	AgencyID  string `json:"agencyId,omitempty"`
	RouteID   string `json:"routeId,omitempty"`
	RouteType int32  `json:"routeType,omitempty"`
	TripID    string `json:"tripId,omitempty"`
	StopID    string `json:"stopId,omitempty"`
}

type Translation struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// DecodedFeed holds the result of decoding one feed envelope, bucketed by
// payload kind.
type DecodedFeed struct {
	Vehicles    []VehiclePosition
	TripUpdates []TripUpdate
	Alerts      []Alert
}

// DecodeFeed decodes a raw GTFS-realtime protobuf envelope into typed
// records. It is all-or-nothing: a failure returns no partial lists.
func DecodeFeed(data []byte) (*DecodedFeed, error) {
	messageType, err := feedMessageType()
	if err != nil {
		return nil, err
	}

	message := messageType.New().Interface()
	if err := proto.Unmarshal(data, message); err != nil {
		return nil, &DecodeError{Err: err}
	}

	feed, ok := message.(*gtfsrt.FeedMessage)
	if !ok {
		return nil, &DecodeError{Err: fmt.Errorf("registry returned unexpected message type %T", message)}
	}

	decoded := &DecodedFeed{}
	decodedAt := time.Now().Unix()

	for _, entity := range feed.Entity {
		switch {
		case entity.Vehicle != nil:
			if vehicle := decodeVehiclePosition(entity, decodedAt); vehicle != nil {
				decoded.Vehicles = append(decoded.Vehicles, *vehicle)
			}
		case entity.TripUpdate != nil:
			decoded.TripUpdates = append(decoded.TripUpdates, decodeTripUpdate(entity.TripUpdate))
		case entity.Alert != nil:
			decoded.Alerts = append(decoded.Alerts, decodeAlert(entity.Alert))
		}
	}

	return decoded, nil
}

func decodeVehiclePosition(entity *gtfsrt.FeedEntity, decodedAt int64) *VehiclePosition {
	vehicle := entity.Vehicle

	// A vehicle record without a position cannot be placed on the map or
	// correlated to a station
	if vehicle.Position == nil {
		return nil
	}

	vehicleID := entity.GetId()
	if vehicleID == "" {
		vehicleID = "unknown"
	}

	position := &VehiclePosition{
		VehicleID: vehicleID,
		TripID:    vehicle.GetTrip().GetTripId(),
		RouteID:   vehicle.GetTrip().GetRouteId(),

		Latitude:  float64(vehicle.Position.GetLatitude()),
		Longitude: float64(vehicle.Position.GetLongitude()),
		Bearing:   float64(vehicle.Position.GetBearing()),
		Speed:     float64(vehicle.Position.GetSpeed()),

		CurrentStopSequence: vehicle.GetCurrentStopSequence(),

		// An absent timestamp means "as of now", never epoch 0
		Timestamp: decodedAt,
	}

	if vehicle.Timestamp != nil {
		position.Timestamp = int64(vehicle.GetTimestamp())
	}

	if vehicle.CurrentStatus != nil {
		position.CurrentStatus = vehicle.GetCurrentStatus().String()
	}

	return position
}

func decodeTripUpdate(tripUpdate *gtfsrt.TripUpdate) TripUpdate {
	trip := tripUpdate.GetTrip()

	tripID := trip.GetTripId()
	if tripID == "" {
		tripID = "unknown"
	}

	update := TripUpdate{
		TripID:  tripID,
		RouteID: trip.GetRouteId(),
	}

	if trip != nil && trip.DirectionId != nil {
		directionID := trip.GetDirectionId()
		update.DirectionID = &directionID
	}

	if trip != nil && trip.ScheduleRelationship != nil {
		update.ScheduleRelationship = trip.GetScheduleRelationship().String()
	}

	for _, stopTimeUpdate := range tripUpdate.GetStopTimeUpdate() {
		decoded := StopTimeUpdate{
			StopSequence: stopTimeUpdate.GetStopSequence(),
			StopID:       stopTimeUpdate.GetStopId(),
		}

		if stopTimeUpdate.Arrival != nil {
			decoded.Arrival = decodeStopTimeEvent(stopTimeUpdate.Arrival)
		}
		if stopTimeUpdate.Departure != nil {
			decoded.Departure = decodeStopTimeEvent(stopTimeUpdate.Departure)
		}
		if stopTimeUpdate.ScheduleRelationship != nil {
			decoded.ScheduleRelationship = stopTimeUpdate.GetScheduleRelationship().String()
		}

		update.StopTimeUpdates = append(update.StopTimeUpdates, decoded)
	}

	return update
}

func decodeStopTimeEvent(event *gtfsrt.TripUpdate_StopTimeEvent) *StopTimeEvent {
	return &StopTimeEvent{
		Delay:       int(event.GetDelay()),
		Time:        event.GetTime(),
		Uncertainty: int(event.GetUncertainty()),
	}
}

func decodeAlert(alert *gtfsrt.Alert) Alert {
	decoded := Alert{}

	for _, period := range alert.GetActivePeriod() {
		decoded.ActivePeriods = append(decoded.ActivePeriods, AlertActivePeriod{
			Start: int64(period.GetStart()),
			End:   int64(period.GetEnd()),
		})
	}

	for _, informedEntity := range alert.GetInformedEntity() {
		decoded.InformedEntities = append(decoded.InformedEntities, AlertInformedEntity{
			AgencyID:  informedEntity.GetAgencyId(),
			RouteID:   informedEntity.GetRouteId(),
			RouteType: informedEntity.GetRouteType(),
			TripID:    informedEntity.GetTrip().GetTripId(),
			StopID:    informedEntity.GetStopId(),
		})
	}

	if alert.Cause != nil {
		decoded.Cause = alert.GetCause().String()
	}
	if alert.Effect != nil {
		decoded.Effect = alert.GetEffect().String()
	}

	decoded.URL = decodeTranslatedString(alert.GetUrl())
	decoded.HeaderText = decodeTranslatedString(alert.GetHeaderText())
	decoded.DescriptionText = decodeTranslatedString(alert.GetDescriptionText())

	return decoded
}

func decodeTranslatedString(translated *gtfsrt.TranslatedString) []Translation {
	var translations []Translation

	for _, translation := range translated.GetTranslation() {
		translations = append(translations, Translation{
			Text:     translation.GetText(),
			Language: translation.GetLanguage(),
		})
	}

	return translations
}

// DelayMinutes converts a delay in seconds to whole minutes. Go's integer
// division truncates toward zero, so -90 seconds reports as -1 minute and
// sub-minute delays in either direction report as 0.
func DelayMinutes(delaySeconds int) int {
	return delaySeconds / 60
}
