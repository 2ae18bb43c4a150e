package ngwmn

import "encoding/xml"

// Wire mapping for the XML documents the NGWMN SOS returns. Tags match local
// element names only; the service mixes sos, om, wml2, gml, and gmd
// namespaces and encoding/xml ignores the prefixes for us.

// getObservationResponse is the WaterML2 GetObservation document. A response
// with no observationData members is how the service says "no data for this
// site"; it is not an error.
type getObservationResponse struct {
	XMLName      xml.Name        `xml:"GetObservationResponse"`
	Observations []omObservation `xml:"observationData>OM_Observation"`
}

type omObservation struct {
	ID         string              `xml:"id,attr"`
	Identifier string              `xml:"identifier"`
	Metadata   observationMetadata `xml:"metadata>ObservationMetadata"`
	Series     timeseries          `xml:"result>MeasurementTimeseries"`
}

type observationMetadata struct {
	GenerationDate   string `xml:"dateStamp>DateTime"`
	ResponsibleParty string `xml:"contact>CI_ResponsibleParty>organisationName>CharacterString"`
	Contact          string `xml:"contact>CI_ResponsibleParty>contactInfo>CI_Contact>address>CI_Address>electronicMailAddress>CharacterString"`
}

type timeseries struct {
	Unit   uom              `xml:"defaultPointMetadata>DefaultTVPMeasurementMetadata>uom"`
	Points []measurementTVP `xml:"point>MeasurementTVP"`
}

type uom struct {
	Code string `xml:"code,attr"`
}

type measurementTVP struct {
	Time      string `xml:"time"`
	Value     string `xml:"value"`
	Qualifier string `xml:"metadata>TVPMeasurementMetadata>qualifier>Category>value"`
}

// featureOfInterestResponse is the GML GetFeatureOfInterest document.
type featureOfInterestResponse struct {
	XMLName  xml.Name          `xml:"GetFeatureOfInterestResponse"`
	Features []samplingFeature `xml:"featureMember>SF_SpatialSamplingFeature"`
}

type samplingFeature struct {
	Identifier string `xml:"identifier"`
	Name       string `xml:"name"`
	Pos        string `xml:"shape>Point>pos"` // "lat lon" in the request SRS
}

// exceptionReport is the OWS error document the service returns instead of a
// payload when a request is rejected.
type exceptionReport struct {
	XMLName    xml.Name    `xml:"ExceptionReport"`
	Exceptions []exception `xml:"Exception"`
}

type exception struct {
	Code string   `xml:"exceptionCode,attr"`
	Text []string `xml:"ExceptionText"`
}
