// Package seed holds the built-in reference catalogs and loads them into the
// store.
package seed

import "github.com/inspecthq/ferrite/internal/core/model"

var EquipmentData = []model.Equipment{
	{ID: "pump-cent-1", Category: "Pumps", Type: "Centrifugal", Subtype: "Horizontal", Name: "Horizontal Centrifugal Pump", Image: "/placeholder.svg"},
	{ID: "pump-cent-2", Category: "Pumps", Type: "Centrifugal", Subtype: "Vertical", Name: "Vertical Centrifugal Pump", Image: "/placeholder.svg"},
	{ID: "pump-pos-1", Category: "Pumps", Type: "Positive Displacement", Subtype: "Gear", Name: "Gear Pump", Image: "/placeholder.svg"},
	{ID: "pump-pos-2", Category: "Pumps", Type: "Positive Displacement", Subtype: "Diaphragm", Name: "Diaphragm Pump", Image: "/placeholder.svg"},
	{ID: "hx-shell-1", Category: "Heat Exchangers", Type: "Shell and Tube", Subtype: "Fixed Tube Sheet", Name: "Fixed Tube Sheet Heat Exchanger", Image: "/placeholder.svg"},
	{ID: "hx-shell-2", Category: "Heat Exchangers", Type: "Shell and Tube", Subtype: "Floating Head", Name: "Floating Head Heat Exchanger", Image: "/placeholder.svg"},
	{ID: "hx-plate-1", Category: "Heat Exchangers", Type: "Plate", Subtype: "Gasketed", Name: "Gasketed Plate Heat Exchanger", Image: "/placeholder.svg"},
	{ID: "vessel-storage-1", Category: "Pressure Vessels", Type: "Storage", Subtype: "Horizontal", Name: "Horizontal Storage Vessel", Image: "/placeholder.svg"},
	{ID: "vessel-storage-2", Category: "Pressure Vessels", Type: "Storage", Subtype: "Vertical", Name: "Vertical Storage Vessel", Image: "/placeholder.svg"},
	{ID: "vessel-reactor-1", Category: "Pressure Vessels", Type: "Reactor", Subtype: "Continuous Stirred Tank", Name: "CSTR Reactor", Image: "/placeholder.svg"},
	{ID: "pipe-carbon-1", Category: "Piping", Type: "Carbon Steel", Name: "Carbon Steel Pipe", Image: "/placeholder.svg"},
	{ID: "pipe-ss-1", Category: "Piping", Type: "Stainless Steel", Name: "Stainless Steel Pipe", Image: "/placeholder.svg"},
	{ID: "pipe-alloy-1", Category: "Piping", Type: "Alloy", Name: "Alloy Pipe", Image: "/placeholder.svg"},
}

var FluidsData = []model.Fluid{
	{ID: "gas-natural", Category: "Gas", Name: "Natural Gas", CompatibleWith: []string{"pipe-carbon-1", "pipe-ss-1", "vessel-storage-1", "vessel-storage-2"}},
	{ID: "gas-hydrogen", Category: "Gas", Name: "Hydrogen", CompatibleWith: []string{"pipe-ss-1", "pipe-alloy-1", "vessel-storage-2"}},
	{ID: "gas-nitrogen", Category: "Gas", Name: "Nitrogen", CompatibleWith: []string{"pipe-carbon-1", "pipe-ss-1", "pipe-alloy-1", "vessel-storage-1", "vessel-storage-2"}},
	{ID: "liquid-crude", Category: "Liquid - Hydrocarbon", Name: "Crude Oil", CompatibleWith: []string{"pipe-carbon-1", "pump-cent-1", "pump-cent-2", "pump-pos-1", "vessel-storage-1"}},
	{ID: "liquid-diesel", Category: "Liquid - Hydrocarbon", Name: "Diesel", CompatibleWith: []string{"pipe-carbon-1", "pump-cent-1", "pump-cent-2", "pump-pos-1", "vessel-storage-1"}},
	{ID: "liquid-gasoline", Category: "Liquid - Hydrocarbon", Name: "Gasoline", CompatibleWith: []string{"pipe-carbon-1", "pump-cent-1", "pump-cent-2", "pump-pos-1", "vessel-storage-1"}},
	{ID: "liquid-water", Category: "Liquid - Aqueous", Name: "Water", CompatibleWith: []string{"pipe-carbon-1", "pipe-ss-1", "pump-cent-1", "pump-cent-2", "hx-shell-1", "hx-shell-2", "hx-plate-1"}},
	{ID: "liquid-acid-hcl", Category: "Liquid - Aqueous", Name: "Hydrochloric Acid", CompatibleWith: []string{"pipe-ss-1", "pipe-alloy-1", "pump-pos-2"}},
	{ID: "liquid-acid-h2so4", Category: "Liquid - Aqueous", Name: "Sulfuric Acid", CompatibleWith: []string{"pipe-ss-1", "pipe-alloy-1", "pump-pos-2"}},
	{ID: "slurry-coal", Category: "Slurry", Name: "Coal Slurry", CompatibleWith: []string{"pipe-alloy-1", "pump-pos-1", "pump-pos-2"}},
	{ID: "slurry-catalyst", Category: "Slurry", Name: "Catalyst Slurry", CompatibleWith: []string{"pipe-ss-1", "pipe-alloy-1", "pump-pos-2", "vessel-reactor-1"}},
}

var DeteriorationData = []model.Mechanism{
	{ID: "corr-general", Name: "General Corrosion", Description: "Uniform thinning of material due to electrochemical reaction with environment", Likelihood: "Medium", AffectedAreas: []string{"Vessel Shell", "Pipe Walls", "Heat Exchanger Tubes"}, ContributingFactors: []string{"Oxygen Content", "Temperature", "Fluid Chemistry", "Material Selection"}},
	{ID: "corr-pitting", Name: "Pitting Corrosion", Description: "Localized form of corrosion that results in small holes in the material", Likelihood: "High", AffectedAreas: []string{"Pipe Bends", "Vessel Bottom", "Welds"}, ContributingFactors: []string{"Chlorides", "Stagnant Areas", "Oxygen Concentration Cells"}},
	{ID: "erosion-particle", Name: "Particle Erosion", Description: "Material removal due to impingement of solid particles entrained in fluid", Likelihood: "High", AffectedAreas: []string{"Pipe Bends", "Valve Internals", "Pump Impellers"}, ContributingFactors: []string{"Particle Size", "Flow Velocity", "Impact Angle", "Material Hardness"}},
	{ID: "fatigue-mech", Name: "Mechanical Fatigue", Description: "Progressive damage due to cyclic loading", Likelihood: "Medium", AffectedAreas: []string{"Pressure Cycling Areas", "Vibration Prone Components", "Rotating Equipment"}, ContributingFactors: []string{"Pressure Cycling", "Vibration", "Stress Concentrations"}},
	{ID: "crack-scc", Name: "Stress Corrosion Cracking", Description: "Formation of cracks due to simultaneous presence of tensile stress and corrosive environment", Likelihood: "Low", AffectedAreas: []string{"High Stress Areas", "Heat Affected Zones", "Cold Worked Regions"}, ContributingFactors: []string{"Tensile Stress", "Corrosive Species", "Temperature", "Material Susceptibility"}},
	{ID: "corr-cui", Name: "Corrosion Under Insulation", Description: "Hidden corrosion occurring beneath insulation materials where moisture becomes trapped", Likelihood: "High", AffectedAreas: []string{"Insulated Pipelines", "Vessel Exteriors", "Heat Exchangers"}, ContributingFactors: []string{"Moisture Ingress", "Damaged Insulation", "Temperature Cycling", "Inadequate Barriers"}},
	{ID: "corr-mic", Name: "Microbially Induced Corrosion", Description: "Corrosion influenced by the presence and activities of microorganisms", Likelihood: "Medium", AffectedAreas: []string{"Stagnant Areas", "Low Flow Regions", "Tank Bottoms", "Dead Legs"}, ContributingFactors: []string{"Nutrient Availability", "Biofilm Formation", "Temperature Range", "Oxygen Level"}},
	{ID: "corr-galvanic", Name: "Galvanic Corrosion", Description: "Accelerated corrosion of less noble metal when in electrical contact with a more noble metal", Likelihood: "Medium", AffectedAreas: []string{"Dissimilar Metal Joints", "Flanges", "Threaded Connections"}, ContributingFactors: []string{"Electrolyte Presence", "Difference in Nobility", "Area Ratio", "Conductivity"}},
	{ID: "corr-crevice", Name: "Crevice Corrosion", Description: "Localized attack in confined spaces where stagnant solution conditions develop", Likelihood: "Medium", AffectedAreas: []string{"Flange Faces", "Threaded Joints", "Under Deposits", "Gasket Interfaces"}, ContributingFactors: []string{"Geometry", "Tight Gaps", "Oxygen Differential", "Chlorides"}},
	{ID: "erosion-fac", Name: "Flow Accelerated Corrosion", Description: "Dissolution of protective oxide layers and base metal due to high-velocity fluid flow", Likelihood: "High", AffectedAreas: []string{"Elbows", "T-Junctions", "Downstream of Flow Restrictions", "Steam Systems"}, ContributingFactors: []string{"Flow Velocity", "pH", "Temperature", "Dissolved Oxygen", "Material Composition"}},
	{ID: "corr-deadleg", Name: "Dead Leg Corrosion", Description: "Accelerated corrosion in sections of piping with little or no flow", Likelihood: "Medium", AffectedAreas: []string{"Bypasses", "Infrequently Used Branches", "Drain Lines", "Relief Valve Inlet Piping"}, ContributingFactors: []string{"Stagnant Conditions", "Solids Accumulation", "Chemical Concentration", "MIC"}},
	{ID: "fatigue-thermal", Name: "Thermal Fatigue", Description: "Damage from cyclic stresses due to temperature fluctuations", Likelihood: "Medium", AffectedAreas: []string{"Heat Exchangers", "Steam Systems", "Injection Points", "Mix Points"}, ContributingFactors: []string{"Temperature Cycling Range", "Cycling Frequency", "Material Properties", "Constraints"}},
	{ID: "htha", Name: "High Temperature Hydrogen Attack", Description: "Degradation of steel due to hydrogen diffusion at elevated temperatures", Likelihood: "Low", AffectedAreas: []string{"Hydroprocessing Units", "Hydrogen-Containing Systems", "High Temperature Equipment"}, ContributingFactors: []string{"Hydrogen Partial Pressure", "Temperature", "Carbon Content", "Material Selection"}},
	{ID: "hydrogen-damage", Name: "Hydrogen Induced Cracking", Description: "Formation of internal cracks due to hydrogen absorption and pressure", Likelihood: "Low", AffectedAreas: []string{"H2S Service Equipment", "Sour Water Systems", "Hydroprocessing Units"}, ContributingFactors: []string{"H2S Presence", "pH", "Temperature", "Material Hardness", "Stress Level"}},
	{ID: "hydrogen-embrittle", Name: "Hydrogen Embrittlement", Description: "Loss of ductility and strength due to hydrogen absorption into metal", Likelihood: "Medium", AffectedAreas: []string{"High Strength Materials", "Bolting", "Welded Areas"}, ContributingFactors: []string{"Material Strength", "Applied Stress", "Hydrogen Source", "Temperature"}},
	{ID: "erosion-cavitation", Name: "Cavitation", Description: "Material damage due to formation and collapse of vapor bubbles in liquid", Likelihood: "Medium", AffectedAreas: []string{"Pump Impellers", "Valve Trim", "Piping Downstream of Restrictions"}, ContributingFactors: []string{"Pressure Drops", "Flow Velocity", "Fluid Properties", "Equipment Design"}},
	{ID: "creep", Name: "Creep", Description: "Time-dependent deformation under stress at elevated temperatures", Likelihood: "Medium", AffectedAreas: []string{"High Temperature Equipment", "Furnace Components", "Boiler Tubes"}, ContributingFactors: []string{"Temperature", "Stress Level", "Time", "Material Properties"}},
	{ID: "brittle-fracture", Name: "Brittle Fracture", Description: "Sudden failure of material with little to no plastic deformation", Likelihood: "Low", AffectedAreas: []string{"Carbon Steel Components", "Pressure Vessels", "Low Temperature Service"}, ContributingFactors: []string{"Low Temperature", "Material Toughness", "Stress Raisers", "Impact Loading"}},
	{ID: "corr-ammonium", Name: "Ammonium Chloride Corrosion", Description: "Corrosion due to formation of ammonium chloride deposits in hydrocarbon processing units", Likelihood: "Medium", AffectedAreas: []string{"Overhead Systems", "Heat Exchangers", "Condensing Zones"}, ContributingFactors: []string{"Temperature", "NH3 and HCl Concentration", "Water Dew Point", "Materials"}},
	{ID: "coating-lining", Name: "Lining Deterioration", Description: "Breakdown of protective internal linings in vessels and piping", Likelihood: "Medium", AffectedAreas: []string{"Lined Vessels", "Storage Tanks", "Chemical Process Equipment"}, ContributingFactors: []string{"Chemical Exposure", "Temperature Cycling", "Mechanical Damage", "Age"}},
	{ID: "nonmetallic-deterioration", Name: "Non-metallic Deterioration", Description: "Degradation of non-metallic components due to environmental factors", Likelihood: "Medium", AffectedAreas: []string{"Gaskets", "Seals", "Elastomeric Components", "Composite Materials"}, ContributingFactors: []string{"Chemical Exposure", "Temperature", "UV Radiation", "Mechanical Stress"}},
}

var FailureScenariosData = []model.Scenario{
	{ID: "catastrophic", Name: "Catastrophic Failure", Description: "Sudden, complete failure leading to immediate loss of containment", Severity: "High", Likelihood: "Low", AffectedComponents: []string{"Pressure Vessels", "Piping Systems", "Storage Tanks"}, MitigationStrategies: []string{"Regular Inspection", "Pressure Testing", "Material Selection"}},
	{ID: "gradual-leakage", Name: "Gradual Leakage", Description: "Slow, progressive loss of containment", Severity: "Medium", Likelihood: "Medium", AffectedComponents: []string{"Flanges", "Valves", "Pump Seals"}, MitigationStrategies: []string{"Leak Detection Systems", "Preventive Maintenance", "Seal Monitoring"}},
	{ID: "structural-collapse", Name: "Structural Collapse", Description: "Loss of structural integrity", Severity: "High", Likelihood: "Low", AffectedComponents: []string{"Support Structures", "Vessel Supports", "Pipe Racks"}, MitigationStrategies: []string{"Structural Analysis", "Load Monitoring", "Corrosion Protection"}},
	{ID: "functional-failure", Name: "Functional Failure", Description: "Loss of intended function without immediate safety risk", Severity: "Low", Likelihood: "Medium", AffectedComponents: []string{"Control Systems", "Instrumentation", "Actuators"}, MitigationStrategies: []string{"Functional Testing", "Redundancy", "Preventive Maintenance"}},
	{ID: "environmental-release", Name: "Environmental Release", Description: "Release of hazardous materials to environment", Severity: "High", Likelihood: "Low", AffectedComponents: []string{"Storage Tanks", "Piping Systems", "Process Equipment"}, MitigationStrategies: []string{"Secondary Containment", "Leak Detection", "Emergency Response"}},
	{ID: "process-upset", Name: "Process Upset", Description: "Disruption of normal process conditions", Severity: "Medium", Likelihood: "Medium", AffectedComponents: []string{"Reactors", "Heat Exchangers", "Control Systems"}, MitigationStrategies: []string{"Process Monitoring", "Safety Interlocks", "Operator Training"}},
	{ID: "safety-activation", Name: "Safety System Activation", Description: "Triggering of safety systems", Severity: "Medium", Likelihood: "Low", AffectedComponents: []string{"Pressure Relief Valves", "Emergency Shutdown Systems", "Fire Protection"}, MitigationStrategies: []string{"Regular Testing", "System Redundancy", "Maintenance"}},
	{ID: "corrosion-failure", Name: "Corrosion-Induced Failure", Description: "Failure due to material degradation", Severity: "High", Likelihood: "Medium", AffectedComponents: []string{"Piping", "Vessels", "Heat Exchangers"}, MitigationStrategies: []string{"Corrosion Monitoring", "Material Selection", "Protective Coatings"}},
	{ID: "fatigue-failure", Name: "Fatigue Failure", Description: "Failure due to cyclic loading", Severity: "High", Likelihood: "Medium", AffectedComponents: []string{"Rotating Equipment", "Pressure Vessels", "Piping Systems"}, MitigationStrategies: []string{"Fatigue Analysis", "Vibration Monitoring", "Design Optimization"}},
	{ID: "erosion-failure", Name: "Erosion-Induced Failure", Description: "Failure due to material removal", Severity: "Medium", Likelihood: "Medium", AffectedComponents: []string{"Piping", "Valves", "Pump Components"}, MitigationStrategies: []string{"Erosion Monitoring", "Material Selection", "Flow Control"}},
}
