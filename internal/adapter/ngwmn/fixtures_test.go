package ngwmn

// Response fixtures trimmed from real NGWMN SOS documents.

const observationXML = `<?xml version="1.0" encoding="UTF-8"?>
<sos:GetObservationResponse
    xmlns:sos="http://www.opengis.net/sos/2.0"
    xmlns:om="http://www.opengis.net/om/2.0"
    xmlns:wml2="http://www.opengis.net/waterml/2.0"
    xmlns:gml="http://www.opengis.net/gml/3.2"
    xmlns:gmd="http://www.isotc211.org/2005/gmd"
    xmlns:gco="http://www.isotc211.org/2005/gco"
    xmlns:swe="http://www.opengis.net/swe/2.0">
  <sos:observationData>
    <om:OM_Observation gml:id="obs.USGS.272838082142201">
      <gml:identifier codeSpace="gwdp">USGS.272838082142201.GWL</gml:identifier>
      <om:metadata>
        <wml2:ObservationMetadata>
          <gmd:contact>
            <gmd:CI_ResponsibleParty>
              <gmd:organisationName>
                <gco:CharacterString>U.S. Geological Survey</gco:CharacterString>
              </gmd:organisationName>
              <gmd:contactInfo>
                <gmd:CI_Contact>
                  <gmd:address>
                    <gmd:CI_Address>
                      <gmd:electronicMailAddress>
                        <gco:CharacterString>gwdp@usgs.gov</gco:CharacterString>
                      </gmd:electronicMailAddress>
                    </gmd:CI_Address>
                  </gmd:address>
                </gmd:CI_Contact>
              </gmd:contactInfo>
            </gmd:CI_ResponsibleParty>
          </gmd:contact>
          <gmd:dateStamp>
            <gco:DateTime>2026-08-12T09:30:00Z</gco:DateTime>
          </gmd:dateStamp>
        </wml2:ObservationMetadata>
      </om:metadata>
      <om:result>
        <wml2:MeasurementTimeseries gml:id="ts.1">
          <wml2:defaultPointMetadata>
            <wml2:DefaultTVPMeasurementMetadata>
              <wml2:uom code="ft"/>
            </wml2:DefaultTVPMeasurementMetadata>
          </wml2:defaultPointMetadata>
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-01-15T08:05:00-05:00</wml2:time>
              <wml2:value>42.1</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-02-15T08:05:00-05:00</wml2:time>
              <wml2:value>41.3</wml2:value>
              <wml2:metadata>
                <wml2:TVPMeasurementMetadata>
                  <wml2:qualifier>
                    <swe:Category>
                      <swe:value>Provisional</swe:value>
                    </swe:Category>
                  </wml2:qualifier>
                </wml2:TVPMeasurementMetadata>
              </wml2:metadata>
            </wml2:MeasurementTVP>
          </wml2:point>
        </wml2:MeasurementTimeseries>
      </om:result>
    </om:OM_Observation>
  </sos:observationData>
</sos:GetObservationResponse>`

const observationBadTimeXML = `<?xml version="1.0" encoding="UTF-8"?>
<sos:GetObservationResponse
    xmlns:sos="http://www.opengis.net/sos/2.0"
    xmlns:om="http://www.opengis.net/om/2.0"
    xmlns:wml2="http://www.opengis.net/waterml/2.0"
    xmlns:gml="http://www.opengis.net/gml/3.2">
  <sos:observationData>
    <om:OM_Observation gml:id="obs.USGS.425957088141001">
      <gml:identifier codeSpace="gwdp">USGS.425957088141001.GWL</gml:identifier>
      <om:result>
        <wml2:MeasurementTimeseries gml:id="ts.1">
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>1999-13-45</wml2:time>
              <wml2:value>12.0</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
        </wml2:MeasurementTimeseries>
      </om:result>
    </om:OM_Observation>
  </sos:observationData>
</sos:GetObservationResponse>`

const emptyObservationXML = `<?xml version="1.0" encoding="UTF-8"?>
<sos:GetObservationResponse xmlns:sos="http://www.opengis.net/sos/2.0"/>`

const featureOfInterestXML = `<?xml version="1.0" encoding="UTF-8"?>
<sos:GetFeatureOfInterestResponse
    xmlns:sos="http://www.opengis.net/sos/2.0"
    xmlns:sams="http://www.opengis.net/samplingSpatial/2.0"
    xmlns:gml="http://www.opengis.net/gml/3.2">
  <sos:featureMember>
    <sams:SF_SpatialSamplingFeature gml:id="VW_GWDP_GEOSERVER.USGS.272838082142201">
      <gml:identifier codeSpace="gwdp">VW_GWDP_GEOSERVER.USGS.272838082142201</gml:identifier>
      <gml:name>ROMP TR 9-2 SURF</gml:name>
      <sams:shape>
        <gml:Point gml:id="pt.1">
          <gml:pos>28.4776389 -82.2385556</gml:pos>
        </gml:Point>
      </sams:shape>
    </sams:SF_SpatialSamplingFeature>
  </sos:featureMember>
  <sos:featureMember>
    <sams:SF_SpatialSamplingFeature gml:id="VW_GWDP_GEOSERVER.USGS.263819081585801">
      <gml:identifier codeSpace="gwdp">VW_GWDP_GEOSERVER.USGS.263819081585801</gml:identifier>
      <gml:name>L-5717 SURFICIAL</gml:name>
      <sams:shape>
        <gml:Point gml:id="pt.2">
          <gml:pos>26.6386111 -81.9827778</gml:pos>
        </gml:Point>
      </sams:shape>
    </sams:SF_SpatialSamplingFeature>
  </sos:featureMember>
</sos:GetFeatureOfInterestResponse>`

const exceptionXML = `<?xml version="1.0" encoding="UTF-8"?>
<ows:ExceptionReport xmlns:ows="http://www.opengis.net/ows/1.1" version="2.0.0">
  <ows:Exception exceptionCode="InvalidParameterValue" locator="featureOfInterest">
    <ows:ExceptionText>Feature of interest not found</ows:ExceptionText>
  </ows:Exception>
</ows:ExceptionReport>`
